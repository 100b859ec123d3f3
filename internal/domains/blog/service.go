package blog

import "context"

type Service interface {
	List(ctx context.Context, limit int) ([]*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Create(ctx context.Context, req *CreateRequest) (*Post, error)
	Delete(ctx context.Context, id string) error
}
