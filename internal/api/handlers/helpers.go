package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayombe/server/internal/api/problem"
	"github.com/ayombe/server/internal/storage"
	"github.com/go-playground/validator/v10"
)

type successResponse struct {
	Success bool `json:"success"`
}

type createResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func pathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(key))
	if raw == "" {
		return 0, errors.New("missing " + key)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return id, nil
}

// writeServiceError maps domain-layer failures onto problem responses:
// validation errors carry field-level detail, store-unavailable surfaces as
// 503 (writes only reach here; reads mask it), anything else is a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, env string) {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		fields := make(map[string]interface{}, len(fieldErrors))
		for _, fe := range fieldErrors {
			fields[fe.Field()] = fe.Tag()
		}
		problem.Write(w, r, http.StatusBadRequest, "https://ayombe.band/problems/validation-error", "Invalid request", err, env, problem.WithErrors(fields))
		return
	}
	if errors.Is(err, storage.ErrUnavailable) {
		problem.Write(w, r, http.StatusServiceUnavailable, "https://ayombe.band/problems/store-unavailable", "Store unavailable", err, env)
		return
	}
	problem.Write(w, r, http.StatusInternalServerError, "https://ayombe.band/problems/server-error", "Server error", err, env)
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error, env string) {
	problem.Write(w, r, http.StatusBadRequest, "https://ayombe.band/problems/validation-error", "Invalid request", err, env)
}
