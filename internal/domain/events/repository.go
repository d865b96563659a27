package events

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("event not found")

type Repository interface {
	Create(ctx context.Context, input CreateInput) (int64, error)
	List(ctx context.Context) ([]Event, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, id int64, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
