package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayombe/server/internal/api/middleware"
	"github.com/ayombe/server/internal/api/problem"
	"github.com/ayombe/server/internal/domain/news"
)

type NewsHandler struct {
	Service *news.Service
	Env     string
}

func NewNewsHandler(service *news.Service, env string) *NewsHandler {
	return &NewsHandler{Service: service, Env: env}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Urgent returns at most one item: the latest announcement flagged urgent.
func (h *NewsHandler) Urgent(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.Urgent(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.SessionIdentity(r)
	if identity == nil {
		problem.Write(w, r, http.StatusUnauthorized, "https://ayombe.band/problems/unauthorized", "Unauthorized", problem.ErrUnauthorized, h.Env)
		return
	}

	var input news.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	id, err := h.Service.Create(r.Context(), identity.UserID, input)
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, createResponse{Success: true, ID: id})
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	var input news.UpdateInput
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

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
