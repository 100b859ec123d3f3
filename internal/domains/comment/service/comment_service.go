package service

import (
	"context"
	"strings"

	"tutoriafacil-backend/internal/domains/comment"
)

const listLimit = 100

type commentService struct {
	repo comment.Repository
}

func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) ListByTutorial(ctx context.Context, tutorialID string) ([]*comment.Comment, error) {
	return s.repo.ListByTutorial(ctx, tutorialID, listLimit)
}

func (s *commentService) Create(ctx context.Context, req *comment.CreateRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	return s.repo.Create(ctx, comment.NewComment(req))
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
