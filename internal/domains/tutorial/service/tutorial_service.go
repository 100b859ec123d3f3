package service

import (
	"context"
	"strings"

	"tutoriafacil-backend/internal/domains/tutorial"
)

type tutorialService struct {
	repo tutorial.Repository
}

func NewTutorialService(repo tutorial.Repository) tutorial.Service {
	return &tutorialService{repo: repo}
}

func (s *tutorialService) List(ctx context.Context, filter tutorial.ListFilter) ([]*tutorial.Response, error) {
	tutorials, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*tutorial.Response, 0, len(tutorials))
	for _, t := range tutorials {
		responses = append(responses, tutorial.ToResponse(t))
	}
	return responses, nil
}

// GetBySlug reads the tutorial and counts the view; the returned payload
// reflects the post-increment counter.
func (s *tutorialService) GetBySlug(ctx context.Context, slug string) (*tutorial.Response, error) {
	t, err := s.repo.GetBySlugAndCountView(ctx, slug)
	if err != nil {
		return nil, err
	}
	return tutorial.ToResponse(t), nil
}

func (s *tutorialService) Create(ctx context.Context, req *tutorial.CreateRequest) (*tutorial.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))

	created, err := s.repo.Create(ctx, tutorial.NewTutorial(req))
	if err != nil {
		return nil, err
	}
	return tutorial.ToResponse(created), nil
}

// Update applies only the supplied fields; an empty request still
// refreshes the modification timestamp, matching the PATCH contract.
func (s *tutorialService) Update(ctx context.Context, id string, req *tutorial.UpdateRequest) (*tutorial.Response, error) {
	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return tutorial.ToResponse(updated), nil
}

func (s *tutorialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Rate validates the range before touching the store; an invalid rating
// leaves the counters untouched.
func (s *tutorialService) Rate(ctx context.Context, slug string, req *tutorial.RatingRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Rate(ctx, slug, req.Rating)
}
