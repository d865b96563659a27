package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ayombe/server/internal/api/middleware"
	"github.com/ayombe/server/internal/api/problem"
	"github.com/ayombe/server/internal/auth"
	"github.com/ayombe/server/internal/domain/users"
)

type AuthHandler struct {
	Users      *users.Service
	JWTManager *auth.JWTManager
	Expiry     time.Duration
	Env        string
}

func NewAuthHandler(usersService *users.Service, jwtManager *auth.JWTManager, expiry time.Duration, env string) *AuthHandler {
	return &AuthHandler{
		Users:      usersService,
		JWTManager: jwtManager,
		Expiry:     expiry,
		Env:        env,
	}
}

// Me returns the session user, or null for anonymous callers and for
// sessions whose user row can no longer be resolved.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.SessionIdentity(r)
	if identity == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	user, err := h.Users.GetByOpenID(r.Context(), identity.OpenID)
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user"`
}

// Login upserts the user row for an external identity and issues the
// session cookie. The identity payload normally arrives from the OAuth
// callback relay, so a store failure here is a hard error rather than a
// degraded no-op.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Users == nil || h.JWTManager == nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://ayombe.band/problems/server-error", "Server error", nil, h.Env)
		return
	}

	var input users.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	user, err := h.Users.Login(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}

	token, err := h.JWTManager.Generate(strconv.FormatInt(user.ID, 10), user.OpenID, user.Role)
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://ayombe.band/problems/server-error", "Server error", err, h.Env)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.Expiry),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, loginResponse{Success: true, User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
