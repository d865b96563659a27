package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayombe/server/internal/domain/users"
	"github.com/jackc/pgx/v5"
)

var _ users.Repository = (*UserRepository)(nil)

type UserRepository struct {
	db *DB
}

const userColumns = `id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in`

// Upsert inserts or updates the row keyed by open_id. Nil params leave the
// stored value untouched on conflict; last_signed_in is always rewritten so
// every login refreshes the timestamp.
func (r *UserRepository) Upsert(ctx context.Context, params users.UpsertParams) error {
	if params.OpenID == "" {
		return fmt.Errorf("upsert user: open_id is required")
	}

	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
VALUES ($1, $2, $3, $4, COALESCE($5, 'user'), COALESCE($6, now()))
ON CONFLICT (open_id) DO UPDATE SET
    name           = COALESCE($2, users.name),
    email          = COALESCE($3, users.email),
    login_method   = COALESCE($4, users.login_method),
    role           = COALESCE($5, users.role),
    last_signed_in = COALESCE($6, now())
`, params.OpenID, params.Name, params.Email, params.LoginMethod, params.Role, params.LastSignedIn)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (*users.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	row := pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE open_id = $1 LIMIT 1`, openID)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	row := pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 LIMIT 1`, id)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]users.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	items := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(
			&u.ID,
			&u.OpenID,
			&u.Name,
			&u.Email,
			&u.LoginMethod,
			&u.Role,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.LastSignedIn,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return items, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, input users.UpdateInput) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
UPDATE users SET
    name  = COALESCE($2, name),
    email = COALESCE($3, email),
    role  = COALESCE($4, role)
 WHERE id = $1
`, id, input.Name, input.Email, input.Role)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes the row by id. Deleting a missing id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*users.User, error) {
	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.OpenID,
		&u.Name,
		&u.Email,
		&u.LoginMethod,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
