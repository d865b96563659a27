package attendances

import "context"

type Repository interface {
	// Upsert atomically inserts or updates the row keyed by (eventID, userID).
	Upsert(ctx context.Context, eventID, userID int64, status Status) error
	ListByEvent(ctx context.Context, eventID int64) ([]Attendance, error)
	ListByUser(ctx context.Context, userID int64) ([]Attendance, error)
}
