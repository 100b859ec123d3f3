package service

import (
	"context"
	"errors"
	"fmt"

	"tutoriafacil-backend/internal/domains/blog"
	"tutoriafacil-backend/internal/domains/category"
	"tutoriafacil-backend/internal/domains/faq"
	"tutoriafacil-backend/internal/domains/seed"
	"tutoriafacil-backend/internal/domains/tutorial"
	"tutoriafacil-backend/pkg/logger"
)

type seedService struct {
	categories category.Repository
	tutorials  tutorial.Repository
	faqs       faq.Repository
	posts      blog.Repository
}

func NewSeedService(
	categories category.Repository,
	tutorials tutorial.Repository,
	faqs faq.Repository,
	posts blog.Repository,
) seed.Service {
	return &seedService{
		categories: categories,
		tutorials:  tutorials,
		faqs:       faqs,
		posts:      posts,
	}
}

// Seed relies on the unique indexes for idempotency: a duplicate slug or
// question means the fixture is already present and is skipped. This also
// holds when two seed calls race.
func (s *seedService) Seed(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	if err := s.seedTutorials(ctx); err != nil {
		return err
	}
	if err := s.seedFAQs(ctx); err != nil {
		return err
	}
	return s.seedBlogPosts(ctx)
}

func (s *seedService) seedCategories(ctx context.Context) error {
	for _, req := range seed.CategoryFixtures() {
		if _, err := s.categories.Create(ctx, category.NewCategory(&req)); err != nil {
			if errors.Is(err, category.ErrDuplicateSlug) {
				continue
			}
			return fmt.Errorf("failed to seed category %q: %w", req.Slug, err)
		}
	}
	return nil
}

func (s *seedService) seedTutorials(ctx context.Context) error {
	for _, req := range seed.TutorialFixtures() {

		// Fixtures reference categories by slug; resolve to the real id.
		cat, err := s.categories.GetBySlug(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, category.ErrNotFound) {
				logger.Error("seed tutorial skipped, category missing", err)
				continue
			}
			return fmt.Errorf("failed to resolve category %q: %w", req.CategoryID, err)
		}
		req.CategoryID = cat.ID

		if _, err := s.tutorials.Create(ctx, tutorial.NewTutorial(&req)); err != nil {
			if errors.Is(err, tutorial.ErrDuplicateSlug) {
				continue
			}
			return fmt.Errorf("failed to seed tutorial %q: %w", req.Slug, err)
		}
	}
	return nil
}

func (s *seedService) seedFAQs(ctx context.Context) error {
	for _, req := range seed.FAQFixtures() {
		if _, err := s.faqs.Create(ctx, faq.NewFAQ(&req)); err != nil {
			if errors.Is(err, faq.ErrDuplicateQuestion) {
				continue
			}
			return fmt.Errorf("failed to seed faq %q: %w", req.Question, err)
		}
	}
	return nil
}

func (s *seedService) seedBlogPosts(ctx context.Context) error {
	for _, req := range seed.BlogFixtures() {
		if _, err := s.posts.Create(ctx, blog.NewPost(&req)); err != nil {
			if errors.Is(err, blog.ErrDuplicateSlug) {
				continue
			}
			return fmt.Errorf("failed to seed blog post %q: %w", req.Slug, err)
		}
	}
	return nil
}
