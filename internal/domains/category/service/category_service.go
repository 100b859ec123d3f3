package service

import (
	"context"
	"strings"

	"tutoriafacil-backend/internal/domains/category"
)

const listLimit = 100

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]*category.Category, error) {
	return s.repo.List(ctx, listLimit)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))

	return s.repo.Create(ctx, category.NewCategory(req))
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
