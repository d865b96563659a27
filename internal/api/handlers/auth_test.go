package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ayombe/server/internal/api/middleware"
	"github.com/ayombe/server/internal/auth"
	"github.com/ayombe/server/internal/domain/users"
	"github.com/ayombe/server/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubUsersRepo struct {
	UpsertFunc      func(ctx context.Context, params users.UpsertParams) error
	GetByOpenIDFunc func(ctx context.Context, openID string) (*users.User, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*users.User, error)
	ListFunc        func(ctx context.Context) ([]users.User, error)
	UpdateFunc      func(ctx context.Context, id int64, input users.UpdateInput) error
	DeleteFunc      func(ctx context.Context, id int64) error
}

func (s *stubUsersRepo) Upsert(ctx context.Context, params users.UpsertParams) error {
	return s.UpsertFunc(ctx, params)
}

func (s *stubUsersRepo) GetByOpenID(ctx context.Context, openID string) (*users.User, error) {
	return s.GetByOpenIDFunc(ctx, openID)
}

func (s *stubUsersRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	return s.GetByIDFunc(ctx, id)
}

func (s *stubUsersRepo) List(ctx context.Context) ([]users.User, error) {
	return s.ListFunc(ctx)
}

func (s *stubUsersRepo) Update(ctx context.Context, id int64, input users.UpdateInput) error {
	return s.UpdateFunc(ctx, id, input)
}

func (s *stubUsersRepo) Delete(ctx context.Context, id int64) error {
	return s.DeleteFunc(ctx, id)
}

func newAuthHandler(repo *stubUsersRepo) *AuthHandler {
	service := users.NewService(repo, zerolog.Nop(), "")
	manager := auth.NewJWTManager("test-secret", time.Hour, "test")
	return NewAuthHandler(service, manager, time.Hour, "test")
}

func TestMeAnonymousReturnsNull(t *testing.T) {
	handler := newAuthHandler(&stubUsersRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestMeResolvesSessionUser(t *testing.T) {
	handler := newAuthHandler(&stubUsersRepo{
		GetByOpenIDFunc: func(ctx context.Context, openID string) (*users.User, error) {
			return &users.User{ID: 42, OpenID: openID, Role: "user"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), &middleware.Identity{UserID: 42, OpenID: "open-abc", Role: "user"}))
	rec := httptest.NewRecorder()
	handler.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body users.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, int64(42), body.ID)
	require.Equal(t, "open-abc", body.OpenID)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	handler := newAuthHandler(&stubUsersRepo{
		UpsertFunc: func(ctx context.Context, params users.UpsertParams) error {
			return nil
		},
		GetByOpenIDFunc: func(ctx context.Context, openID string) (*users.User, error) {
			return &users.User{ID: 42, OpenID: openID, Role: "user"}, nil
		},
	})

	payload := `{"openId":"open-abc","name":"Mariama"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)

	var body loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.NotNil(t, body.User)
	require.Equal(t, int64(42), body.User.ID)
}

func TestLoginUnavailableStoreIs503(t *testing.T) {
	handler := newAuthHandler(&stubUsersRepo{
		UpsertFunc: func(ctx context.Context, params users.UpsertParams) error {
			return storage.ErrUnavailable
		},
	})

	payload := `{"openId":"open-abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLoginRejectsBadPayload(t *testing.T) {
	handler := newAuthHandler(&stubUsersRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	handler := newAuthHandler(&stubUsersRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
