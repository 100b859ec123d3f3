package comment

import "context"

type Repository interface {
	ListByTutorial(ctx context.Context, tutorialID string, limit int) ([]*Comment, error)
	Create(ctx context.Context, entity *Comment) (*Comment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
