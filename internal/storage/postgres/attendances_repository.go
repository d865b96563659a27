package postgres

import (
	"context"
	"fmt"

	"github.com/ayombe/server/internal/domain/attendances"
	"github.com/jackc/pgx/v5"
)

var _ attendances.Repository = (*AttendanceRepository)(nil)

type AttendanceRepository struct {
	db *DB
}

const attendanceColumns = `id, event_id, user_id, status, created_at, updated_at`

// Upsert relies on the unique (event_id, user_id) constraint for atomic
// conflict resolution, so concurrent confirms for the same pair can never
// produce a second row.
func (r *AttendanceRepository) Upsert(ctx context.Context, eventID, userID int64, status attendances.Status) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
INSERT INTO attendances (event_id, user_id, status)
VALUES ($1, $2, $3)
ON CONFLICT (event_id, user_id) DO UPDATE SET status = EXCLUDED.status
`, eventID, userID, string(status))
	if err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID int64) ([]attendances.Attendance, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE event_id = $1`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendances by event: %w", err)
	}
	defer rows.Close()
	return collectAttendances(rows)
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID int64) ([]attendances.Attendance, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list attendances by user: %w", err)
	}
	defer rows.Close()
	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendances.Attendance, error) {
	items := make([]attendances.Attendance, 0)
	for rows.Next() {
		var a attendances.Attendance
		if err := rows.Scan(
			&a.ID,
			&a.EventID,
			&a.UserID,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendances: %w", err)
	}
	return items, nil
}
