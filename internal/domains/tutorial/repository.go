package tutorial

import "context"

// Repository is the tutorial data access contract. GetBySlugAndCountView
// and Rate are the two side-effecting reads/writes: both lean on the
// store's atomic single-row update so concurrent calls never lose counts.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Tutorial, error)
	// GetBySlugAndCountView increments the view counter as part of the
	// read and returns the post-increment record.
	GetBySlugAndCountView(ctx context.Context, slug string) (*Tutorial, error)
	GetByID(ctx context.Context, id string) (*Tutorial, error)
	Create(ctx context.Context, entity *Tutorial) (*Tutorial, error)
	// Update applies only the fields present in the request and refreshes
	// updated_at.
	Update(ctx context.Context, id string, req *UpdateRequest) (*Tutorial, error)
	Delete(ctx context.Context, id string) error
	// Rate adds the rating to rating_sum and bumps rating_count in one
	// atomic statement.
	Rate(ctx context.Context, slug string, rating int) error
	ListSummaries(ctx context.Context, limit int) ([]Summary, error)
	Count(ctx context.Context) (int64, error)
}
