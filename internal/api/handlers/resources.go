package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayombe/server/internal/api/middleware"
	"github.com/ayombe/server/internal/api/problem"
	"github.com/ayombe/server/internal/domain/resources"
)

type ResourcesHandler struct {
	Service *resources.Service
	Env     string
}

func NewResourcesHandler(service *resources.Service, env string) *ResourcesHandler {
	return &ResourcesHandler{Service: service, Env: env}
}

func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ResourcesHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.SessionIdentity(r)
	if identity == nil {
		problem.Write(w, r, http.StatusUnauthorized, "https://ayombe.band/problems/unauthorized", "Unauthorized", problem.ErrUnauthorized, h.Env)
		return
	}

	var input resources.CreateInput
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

func (h *ResourcesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	var input resources.UpdateInput
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

func (h *ResourcesHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
