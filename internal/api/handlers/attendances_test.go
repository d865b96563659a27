package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayombe/server/internal/api/middleware"
	"github.com/ayombe/server/internal/domain/attendances"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubAttendancesRepo struct {
	UpsertFunc      func(ctx context.Context, eventID, userID int64, status attendances.Status) error
	ListByEventFunc func(ctx context.Context, eventID int64) ([]attendances.Attendance, error)
	ListByUserFunc  func(ctx context.Context, userID int64) ([]attendances.Attendance, error)
}

func (s *stubAttendancesRepo) Upsert(ctx context.Context, eventID, userID int64, status attendances.Status) error {
	return s.UpsertFunc(ctx, eventID, userID, status)
}

func (s *stubAttendancesRepo) ListByEvent(ctx context.Context, eventID int64) ([]attendances.Attendance, error) {
	return s.ListByEventFunc(ctx, eventID)
}

func (s *stubAttendancesRepo) ListByUser(ctx context.Context, userID int64) ([]attendances.Attendance, error) {
	return s.ListByUserFunc(ctx, userID)
}

func newAttendancesHandler(repo *stubAttendancesRepo) *AttendancesHandler {
	service := attendances.NewService(repo, zerolog.Nop())
	return NewAttendancesHandler(service, "test")
}

func TestAttendanceUpsertUsesSessionUser(t *testing.T) {
	var gotEvent, gotUser int64
	handler := newAttendancesHandler(&stubAttendancesRepo{
		UpsertFunc: func(ctx context.Context, eventID, userID int64, status attendances.Status) error {
			gotEvent, gotUser = eventID, userID
			return nil
		},
	})

	payload := `{"eventId":7,"userId":999,"status":"confirmed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/attendances", strings.NewReader(payload))
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), &middleware.Identity{UserID: 42, Role: "user"}))
	rec := httptest.NewRecorder()
	handler.Upsert(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(7), gotEvent)
	require.Equal(t, int64(42), gotUser, "user id must come from the session, not the payload")
}

func TestAttendanceUpsertAnonymousIs401(t *testing.T) {
	handler := newAttendancesHandler(&stubAttendancesRepo{})

	payload := `{"eventId":7,"status":"confirmed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/attendances", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Upsert(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAttendanceUpsertRejectsBadStatus(t *testing.T) {
	handler := newAttendancesHandler(&stubAttendancesRepo{})

	payload := `{"eventId":7,"status":"maybe"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/attendances", strings.NewReader(payload))
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), &middleware.Identity{UserID: 42, Role: "user"}))
	rec := httptest.NewRecorder()
	handler.Upsert(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceMineUsesSessionUser(t *testing.T) {
	var gotUser int64
	handler := newAttendancesHandler(&stubAttendancesRepo{
		ListByUserFunc: func(ctx context.Context, userID int64) ([]attendances.Attendance, error) {
			gotUser = userID
			return []attendances.Attendance{{ID: 1, EventID: 7, UserID: userID, Status: attendances.StatusConfirmed}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances/mine", nil)
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), &middleware.Identity{UserID: 42, Role: "user"}))
	rec := httptest.NewRecorder()
	handler.Mine(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(42), gotUser)
}

func TestAttendanceByEventParsesPath(t *testing.T) {
	var gotEvent int64
	handler := newAttendancesHandler(&stubAttendancesRepo{
		ListByEventFunc: func(ctx context.Context, eventID int64) ([]attendances.Attendance, error) {
			gotEvent = eventID
			return []attendances.Attendance{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/7/attendances", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	handler.ByEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(7), gotEvent)
}
