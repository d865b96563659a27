package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayombe/server/internal/domain/users"
)

type UsersHandler struct {
	Service *users.Service
	Env     string
}

func NewUsersHandler(service *users.Service, env string) *UsersHandler {
	return &UsersHandler{Service: service, Env: env}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type userCreateResponse struct {
	Success  bool   `json:"success"`
	OpenID   string `json:"openId"`
	Password string `json:"password"`
}

// Create registers a member manually. The response relays the generated
// identity token and the password for the admin to pass along out-of-band.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input users.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	result, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, userCreateResponse{Success: true, OpenID: result.OpenID, Password: result.Password})
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	var input users.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	if err := h.Service.Update(r.Context(), id, input); err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
