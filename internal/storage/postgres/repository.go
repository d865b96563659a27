package postgres

import (
	"github.com/ayombe/server/internal/domain/attendances"
	"github.com/ayombe/server/internal/domain/events"
	"github.com/ayombe/server/internal/domain/news"
	"github.com/ayombe/server/internal/domain/resources"
	"github.com/ayombe/server/internal/domain/users"
)

// Repository groups data access by domain over a shared lazy DB handle.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Users() users.Repository {
	return &UserRepository{db: r.db}
}

func (r *Repository) Events() events.Repository {
	return &EventRepository{db: r.db}
}

func (r *Repository) News() news.Repository {
	return &NewsRepository{db: r.db}
}

func (r *Repository) Attendances() attendances.Repository {
	return &AttendanceRepository{db: r.db}
}

func (r *Repository) Resources() resources.Repository {
	return &ResourceRepository{db: r.db}
}
