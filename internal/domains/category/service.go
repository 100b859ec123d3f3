package category

import "context"

// Service is the category business logic contract.
type Service interface {
	List(ctx context.Context) ([]*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, req *CreateRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
}
