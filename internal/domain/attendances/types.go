package attendances

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusPending   Status = "pending"
)

// Attendance links one user to one event. At most one row exists per
// (EventID, UserID) pair, enforced by a unique constraint and upsert.
type Attendance struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    int64     `json:"userId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpsertInput is the self-service payload. The acting user is taken from
// the session, never from the request body.
type UpsertInput struct {
	EventID int64  `json:"eventId" validate:"required,gt=0"`
	Status  Status `json:"status" validate:"required,oneof=confirmed declined pending"`
}
