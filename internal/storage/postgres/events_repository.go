package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayombe/server/internal/domain/events"
	"github.com/jackc/pgx/v5"
)

var _ events.Repository = (*EventRepository)(nil)

type EventRepository struct {
	db *DB
}

const eventColumns = `id, title, date, show_time, sound_check_time, location, location_map_url,
       uniform_description, uniform_image_url, notes, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, input events.CreateInput) (int64, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	err = pool.QueryRow(ctx, `
INSERT INTO events (title, date, show_time, sound_check_time, location, location_map_url,
                    uniform_description, uniform_image_url, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`,
		input.Title,
		input.Date,
		input.ShowTime,
		input.SoundCheckTime,
		input.Location,
		input.LocationMapURL,
		input.UniformDescription,
		input.UniformImageURL,
		input.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) List(ctx context.Context) ([]events.Event, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]events.Event, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+eventColumns+` FROM events WHERE date >= $1 ORDER BY date ASC`, from)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*events.Event, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	row := pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 LIMIT 1`, id)
	var e events.Event
	if err := scanEvent(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// Update rewrites only the supplied fields; nil inputs keep the stored value.
func (r *EventRepository) Update(ctx context.Context, id int64, input events.UpdateInput) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
UPDATE events SET
    title               = COALESCE($2, title),
    date                = COALESCE($3, date),
    show_time           = COALESCE($4, show_time),
    sound_check_time    = COALESCE($5, sound_check_time),
    location            = COALESCE($6, location),
    location_map_url    = COALESCE($7, location_map_url),
    uniform_description = COALESCE($8, uniform_description),
    uniform_image_url   = COALESCE($9, uniform_image_url),
    notes               = COALESCE($10, notes)
 WHERE id = $1
`,
		id,
		input.Title,
		input.Date,
		input.ShowTime,
		input.SoundCheckTime,
		input.Location,
		input.LocationMapURL,
		input.UniformDescription,
		input.UniformImageURL,
		input.Notes,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes the row by id. Attendance rows referencing the event are
// left in place; the roster query is keyed by event id so they go unseen.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func scanEvent(row pgx.Row, e *events.Event) error {
	return row.Scan(
		&e.ID,
		&e.Title,
		&e.Date,
		&e.ShowTime,
		&e.SoundCheckTime,
		&e.Location,
		&e.LocationMapURL,
		&e.UniformDescription,
		&e.UniformImageURL,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

func collectEvents(rows pgx.Rows) ([]events.Event, error) {
	items := make([]events.Event, 0)
	for rows.Next() {
		var e events.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return items, nil
}
