package category

import "context"

// Repository is the category data access contract.
type Repository interface {
	List(ctx context.Context, limit int) ([]*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, entity *Category) (*Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
