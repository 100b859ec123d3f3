package tutorial

import "context"

// Service is the tutorial business logic contract.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
	Create(ctx context.Context, req *CreateRequest) (*Response, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	Rate(ctx context.Context, slug string, req *RatingRequest) error
}
