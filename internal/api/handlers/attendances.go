package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayombe/server/internal/api/middleware"
	"github.com/ayombe/server/internal/api/problem"
	"github.com/ayombe/server/internal/domain/attendances"
)

type AttendancesHandler struct {
	Service *attendances.Service
	Env     string
}

func NewAttendancesHandler(service *attendances.Service, env string) *AttendancesHandler {
	return &AttendancesHandler{Service: service, Env: env}
}

// Mine lists the caller's own attendance records.
func (h *AttendancesHandler) Mine(w http.ResponseWriter, r *http.Request) {
	identity := middleware.SessionIdentity(r)
	if identity == nil {
		problem.Write(w, r, http.StatusUnauthorized, "https://ayombe.band/problems/unauthorized", "Unauthorized", problem.ErrUnauthorized, h.Env)
		return
	}

	items, err := h.Service.ByUser(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ByEvent lists the roster for one event.
func (h *AttendancesHandler) ByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	items, err := h.Service.ByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Upsert records the caller's own attendance. The target user id always
// comes from the session, never from the payload.
func (h *AttendancesHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	identity := middleware.SessionIdentity(r)
	if identity == nil {
		problem.Write(w, r, http.StatusUnauthorized, "https://ayombe.band/problems/unauthorized", "Unauthorized", problem.ErrUnauthorized, h.Env)
		return
	}

	var input attendances.UpsertInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	if err := h.Service.Upsert(r.Context(), identity.UserID, input); err != nil {
		writeServiceError(w, r, err, h.Env)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
