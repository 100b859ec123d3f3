package blog

import "context"

type Repository interface {
	List(ctx context.Context, limit int) ([]*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Create(ctx context.Context, entity *Post) (*Post, error)
	Delete(ctx context.Context, id string) error
}
