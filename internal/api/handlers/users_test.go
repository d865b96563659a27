package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayombe/server/internal/domain/users"
	"github.com/ayombe/server/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newUsersHandler(repo *stubUsersRepo) *UsersHandler {
	service := users.NewService(repo, zerolog.Nop(), "")
	return NewUsersHandler(service, "test")
}

func TestUsersCreateRelaysCredentials(t *testing.T) {
	handler := newUsersHandler(&stubUsersRepo{
		UpsertFunc: func(ctx context.Context, params users.UpsertParams) error {
			return nil
		},
	})

	payload := `{"name":"Mariama","password":"secret123","role":"user"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Equal(t, "secret123", body["password"])
	openID, _ := body["openId"].(string)
	require.True(t, strings.HasPrefix(openID, "local_"))
}

func TestUsersCreateRejectsShortPassword(t *testing.T) {
	handler := newUsersHandler(&stubUsersRepo{})

	payload := `{"name":"Mariama","password":"123","role":"user"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsersListDegradedStoreIsEmpty(t *testing.T) {
	handler := newUsersHandler(&stubUsersRepo{
		ListFunc: func(ctx context.Context) ([]users.User, error) {
			return nil, storage.ErrUnavailable
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestUsersUpdatePartialPayload(t *testing.T) {
	var captured users.UpdateInput
	handler := newUsersHandler(&stubUsersRepo{
		UpdateFunc: func(ctx context.Context, id int64, input users.UpdateInput) error {
			captured = input
			return nil
		},
	})

	payload := `{"role":"admin"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/5", strings.NewReader(payload))
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, captured.Name)
	require.Nil(t, captured.Email)
	require.NotNil(t, captured.Role)
	require.Equal(t, "admin", *captured.Role)
}

func TestUsersDeleteMissingRowSucceeds(t *testing.T) {
	handler := newUsersHandler(&stubUsersRepo{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
