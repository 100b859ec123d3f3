package faq

import "context"

type Repository interface {
	// List returns FAQs sorted by display order ascending, optionally
	// filtered by category.
	List(ctx context.Context, category string, limit int) ([]*FAQ, error)
	GetByQuestion(ctx context.Context, question string) (*FAQ, error)
	Create(ctx context.Context, entity *FAQ) (*FAQ, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
