package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayombe/server/internal/auth"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	return auth.NewJWTManager("test-secret", time.Hour, "test")
}

func identityEcho(t *testing.T, captured **Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = SessionIdentity(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionResolvesCookie(t *testing.T) {
	manager := newManager(t)
	token, err := manager.Generate("42", "open-abc", "admin")
	require.NoError(t, err)

	var identity *Identity
	handler := Session(manager)(identityEcho(t, &identity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, identity)
	require.Equal(t, int64(42), identity.UserID)
	require.Equal(t, "open-abc", identity.OpenID)
	require.Equal(t, "admin", identity.Role)
}

func TestSessionResolvesBearerToken(t *testing.T) {
	manager := newManager(t)
	token, err := manager.Generate("7", "open-xyz", "user")
	require.NoError(t, err)

	var identity *Identity
	handler := Session(manager)(identityEcho(t, &identity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, identity)
	require.Equal(t, int64(7), identity.UserID)
}

func TestSessionInvalidTokenIsAnonymous(t *testing.T) {
	manager := newManager(t)

	var identity *Identity
	handler := Session(manager)(identityEcho(t, &identity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Nil(t, identity)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireUserRejectsAnonymous(t *testing.T) {
	called := false
	handler := RequireUser("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestRequireUserPassesAuthenticated(t *testing.T) {
	called := false
	handler := RequireUser("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), &Identity{UserID: 1, Role: "user"}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, called)
}

func TestRequireAdminRejectsMember(t *testing.T) {
	called := false
	handler := RequireAdmin("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), &Identity{UserID: 1, Role: "user"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called, "handler must not run for forbidden callers")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Solo administradores pueden realizar esta acción", body["detail"])
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	handler := RequireAdmin("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/events", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	called := false
	handler := RequireAdmin("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), &Identity{UserID: 1, Role: "admin"}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, called)
}
