package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayombe/server/internal/api/problem"
	"github.com/ayombe/server/internal/auth"
)

// SessionCookieName holds the signed session token issued at login.
const SessionCookieName = "ayombe_session"

// ForbiddenMessage is the literal detail returned to non-admin callers of
// admin-tier procedures.
const ForbiddenMessage = "Solo administradores pueden realizar esta acción"

type contextKeySession string

const identityKey contextKeySession = "identity"

// Identity is the session-derived caller: numeric user id, external
// identity token, and role, all taken from the validated session claims.
type Identity struct {
	UserID int64
	OpenID string
	Role   string
}

// Session resolves the caller from the session cookie (or a Bearer token)
// and stores the identity in the request context. Requests without a valid
// token proceed anonymously; tier enforcement happens in RequireUser and
// RequireAdmin.
func Session(manager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				next.ServeHTTP(w, r)
				return
			}

			token := sessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := manager.Validate(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity := &Identity{
				UserID: userID,
				OpenID: claims.OpenID,
				Role:   claims.Role,
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous callers before the handler runs.
func RequireUser(env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionIdentity(r) == nil {
				problem.Write(w, r, http.StatusUnauthorized, "https://ayombe.band/problems/unauthorized", "Unauthorized", problem.ErrUnauthorized, env)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects anonymous callers and non-admin members. The check
// runs before the handler, so a forbidden call never reaches persistence.
func RequireAdmin(env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := SessionIdentity(r)
			if identity == nil {
				problem.Write(w, r, http.StatusUnauthorized, "https://ayombe.band/problems/unauthorized", "Unauthorized", problem.ErrUnauthorized, env)
				return
			}
			if !auth.IsAdmin(identity.Role) {
				problem.Write(w, r, http.StatusForbidden, "https://ayombe.band/problems/forbidden", "Forbidden", problem.ErrForbidden, env, problem.WithDetail(ForbiddenMessage))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionIdentity returns the resolved caller, or nil for anonymous requests.
func SessionIdentity(r *http.Request) *Identity {
	if r == nil {
		return nil
	}
	if identity, ok := r.Context().Value(identityKey).(*Identity); ok {
		return identity
	}
	return nil
}

// ContextWithIdentity seeds a request context with an identity. Exported
// for handler tests.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && strings.TrimSpace(cookie.Value) != "" {
		return strings.TrimSpace(cookie.Value)
	}
	if token, err := auth.TokenFromHeader(r.Header.Get("Authorization")); err == nil {
		return token
	}
	return ""
}
