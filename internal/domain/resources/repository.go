package resources

import "context"

type Repository interface {
	Create(ctx context.Context, authorID int64, input CreateInput) (int64, error)
	List(ctx context.Context) ([]Resource, error)
	Update(ctx context.Context, id int64, input UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
