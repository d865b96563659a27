package postgres

import (
	"context"
	"fmt"

	"github.com/ayombe/server/internal/domain/resources"
	"github.com/jackc/pgx/v5"
)

var _ resources.Repository = (*ResourceRepository)(nil)

type ResourceRepository struct {
	db *DB
}

const resourceColumns = `id, title, description, type, url, created_by, created_at, updated_at`

func (r *ResourceRepository) Create(ctx context.Context, authorID int64, input resources.CreateInput) (int64, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	err = pool.QueryRow(ctx, `
INSERT INTO resources (title, description, type, url, created_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, input.Title, input.Description, string(input.Type), input.URL, authorID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create resource: %w", err)
	}
	return id, nil
}

func (r *ResourceRepository) List(ctx context.Context) ([]resources.Resource, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()
	return collectResources(rows)
}

func (r *ResourceRepository) Update(ctx context.Context, id int64, input resources.UpdateInput) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	var resourceType *string
	if input.Type != nil {
		value := string(*input.Type)
		resourceType = &value
	}

	_, err = pool.Exec(ctx, `
UPDATE resources SET
    title       = COALESCE($2, title),
    description = COALESCE($3, description),
    type        = COALESCE($4, type),
    url         = COALESCE($5, url)
 WHERE id = $1
`, id, input.Title, input.Description, resourceType, input.URL)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}

func collectResources(rows pgx.Rows) ([]resources.Resource, error) {
	items := make([]resources.Resource, 0)
	for rows.Next() {
		var res resources.Resource
		if err := rows.Scan(
			&res.ID,
			&res.Title,
			&res.Description,
			&res.Type,
			&res.URL,
			&res.CreatedBy,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		items = append(items, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}
	return items, nil
}
