package service

import (
	"context"

	"tutoriafacil-backend/internal/domains/faq"
)

const listLimit = 100

type faqService struct {
	repo faq.Repository
}

func NewFAQService(repo faq.Repository) faq.Service {
	return &faqService{repo: repo}
}

func (s *faqService) List(ctx context.Context, category string) ([]*faq.FAQ, error) {
	return s.repo.List(ctx, category, listLimit)
}

func (s *faqService) Create(ctx context.Context, req *faq.CreateRequest) (*faq.FAQ, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, faq.NewFAQ(req))
}

func (s *faqService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
