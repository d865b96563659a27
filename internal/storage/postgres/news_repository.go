package postgres

import (
	"context"
	"fmt"

	"github.com/ayombe/server/internal/domain/news"
	"github.com/jackc/pgx/v5"
)

var _ news.Repository = (*NewsRepository)(nil)

type NewsRepository struct {
	db *DB
}

const newsColumns = `id, title, content, is_urgent, created_by, created_at, updated_at`

func (r *NewsRepository) Create(ctx context.Context, authorID int64, input news.CreateInput) (int64, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	err = pool.QueryRow(ctx, `
INSERT INTO news (title, content, is_urgent, created_by)
VALUES ($1, $2, $3, $4)
RETURNING id
`, input.Title, input.Content, urgentFlag(input.IsUrgent), authorID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create news: %w", err)
	}
	return id, nil
}

func (r *NewsRepository) List(ctx context.Context) ([]news.News, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+newsColumns+` FROM news ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()
	return collectNews(rows)
}

func (r *NewsRepository) ListUrgent(ctx context.Context) ([]news.News, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
SELECT `+newsColumns+` FROM news WHERE is_urgent = 1 ORDER BY created_at DESC LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("list urgent news: %w", err)
	}
	defer rows.Close()
	return collectNews(rows)
}

// Update rewrites only the supplied fields; the urgency flag is translated
// to its 0/1 column form only when explicitly present.
func (r *NewsRepository) Update(ctx context.Context, id int64, input news.UpdateInput) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	var urgent *int16
	if input.IsUrgent != nil {
		value := urgentFlag(*input.IsUrgent)
		urgent = &value
	}

	_, err = pool.Exec(ctx, `
UPDATE news SET
    title     = COALESCE($2, title),
    content   = COALESCE($3, content),
    is_urgent = COALESCE($4, is_urgent)
 WHERE id = $1
`, id, input.Title, input.Content, urgent)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

func urgentFlag(isUrgent bool) int16 {
	if isUrgent {
		return 1
	}
	return 0
}

func collectNews(rows pgx.Rows) ([]news.News, error) {
	items := make([]news.News, 0)
	for rows.Next() {
		var (
			n      news.News
			urgent int16
		)
		if err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Content,
			&urgent,
			&n.CreatedBy,
			&n.CreatedAt,
			&n.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		n.IsUrgent = urgent != 0
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate news: %w", err)
	}
	return items, nil
}
