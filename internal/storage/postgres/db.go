package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/ayombe/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the process-wide store handle. The pool is created lazily on first
// use so the server can boot (and serve degraded reads) without a reachable
// database; a failed attempt is retried on the next call, and a created
// pool is reused without re-validation.
type DB struct {
	url      string
	maxConns int32

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func Open(url string, maxConns int) *DB {
	return &DB{url: url, maxConns: int32(maxConns)}
}

func (d *DB) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pool != nil {
		return d.pool, nil
	}
	if d.url == "" {
		return nil, storage.ErrUnavailable
	}

	cfg, err := pgxpool.ParseConfig(d.url)
	if err != nil {
		return nil, fmt.Errorf("%w: parse database url: %v", storage.ErrUnavailable, err)
	}
	if d.maxConns > 0 {
		cfg.MaxConns = d.maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	d.pool = pool
	return d.pool, nil
}

func (d *DB) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
	}
}
