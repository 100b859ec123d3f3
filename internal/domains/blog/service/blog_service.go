package service

import (
	"context"
	"strings"

	"tutoriafacil-backend/internal/domains/blog"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context, limit int) ([]*blog.Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *blogService) Create(ctx context.Context, req *blog.CreateRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))

	return s.repo.Create(ctx, blog.NewPost(req))
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
