package comment

import "context"

type Service interface {
	ListByTutorial(ctx context.Context, tutorialID string) ([]*Comment, error)
	Create(ctx context.Context, req *CreateRequest) (*Comment, error)
	Delete(ctx context.Context, id string) error
}
