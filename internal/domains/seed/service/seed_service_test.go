package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoriafacil-backend/internal/domains/blog"
	"tutoriafacil-backend/internal/domains/category"
	"tutoriafacil-backend/internal/domains/faq"
	"tutoriafacil-backend/internal/domains/tutorial"
)

type memoryCategoryRepo struct {
	bySlug map[string]*category.Category
}

func (m *memoryCategoryRepo) List(_ context.Context, _ int) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(m.bySlug))
	for _, c := range m.bySlug {
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryCategoryRepo) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	c, ok := m.bySlug[slug]
	if !ok {
		return nil, category.ErrNotFound
	}
	return c, nil
}

func (m *memoryCategoryRepo) Create(_ context.Context, entity *category.Category) (*category.Category, error) {
	if _, exists := m.bySlug[entity.Slug]; exists {
		return nil, category.ErrDuplicateSlug
	}
	m.bySlug[entity.Slug] = entity
	return entity, nil
}

func (m *memoryCategoryRepo) Delete(_ context.Context, _ string) error { return nil }

func (m *memoryCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.bySlug)), nil
}

type memoryTutorialRepo struct {
	bySlug map[string]*tutorial.Tutorial
}

func (m *memoryTutorialRepo) List(_ context.Context, _ tutorial.ListFilter) ([]*tutorial.Tutorial, error) {
	return nil, nil
}

func (m *memoryTutorialRepo) GetBySlugAndCountView(_ context.Context, _ string) (*tutorial.Tutorial, error) {
	return nil, tutorial.ErrNotFound
}

func (m *memoryTutorialRepo) GetByID(_ context.Context, _ string) (*tutorial.Tutorial, error) {
	return nil, tutorial.ErrNotFound
}

func (m *memoryTutorialRepo) Create(_ context.Context, entity *tutorial.Tutorial) (*tutorial.Tutorial, error) {
	if _, exists := m.bySlug[entity.Slug]; exists {
		return nil, tutorial.ErrDuplicateSlug
	}
	m.bySlug[entity.Slug] = entity
	return entity, nil
}

func (m *memoryTutorialRepo) Update(_ context.Context, _ string, _ *tutorial.UpdateRequest) (*tutorial.Tutorial, error) {
	return nil, tutorial.ErrNotFound
}

func (m *memoryTutorialRepo) Delete(_ context.Context, _ string) error { return nil }

func (m *memoryTutorialRepo) Rate(_ context.Context, _ string, _ int) error { return nil }

func (m *memoryTutorialRepo) ListSummaries(_ context.Context, _ int) ([]tutorial.Summary, error) {
	return nil, nil
}

func (m *memoryTutorialRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.bySlug)), nil
}

type memoryFAQRepo struct {
	byQuestion map[string]*faq.FAQ
}

func (m *memoryFAQRepo) List(_ context.Context, _ string, _ int) ([]*faq.FAQ, error) {
	return nil, nil
}

func (m *memoryFAQRepo) GetByQuestion(_ context.Context, question string) (*faq.FAQ, error) {
	f, ok := m.byQuestion[question]
	if !ok {
		return nil, faq.ErrNotFound
	}
	return f, nil
}

func (m *memoryFAQRepo) Create(_ context.Context, entity *faq.FAQ) (*faq.FAQ, error) {
	if _, exists := m.byQuestion[entity.Question]; exists {
		return nil, faq.ErrDuplicateQuestion
	}
	m.byQuestion[entity.Question] = entity
	return entity, nil
}

func (m *memoryFAQRepo) Delete(_ context.Context, _ string) error { return nil }

func (m *memoryFAQRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.byQuestion)), nil
}

type memoryBlogRepo struct {
	bySlug map[string]*blog.Post
}

func (m *memoryBlogRepo) List(_ context.Context, _ int) ([]*blog.Post, error) { return nil, nil }

func (m *memoryBlogRepo) GetBySlug(_ context.Context, slug string) (*blog.Post, error) {
	p, ok := m.bySlug[slug]
	if !ok {
		return nil, blog.ErrNotFound
	}
	return p, nil
}

func (m *memoryBlogRepo) Create(_ context.Context, entity *blog.Post) (*blog.Post, error) {
	if _, exists := m.bySlug[entity.Slug]; exists {
		return nil, blog.ErrDuplicateSlug
	}
	m.bySlug[entity.Slug] = entity
	return entity, nil
}

func (m *memoryBlogRepo) Delete(_ context.Context, _ string) error { return nil }

func newSeedFixture() (*memoryCategoryRepo, *memoryTutorialRepo, *memoryFAQRepo, *memoryBlogRepo, *seedService) {
	categories := &memoryCategoryRepo{bySlug: make(map[string]*category.Category)}
	tutorials := &memoryTutorialRepo{bySlug: make(map[string]*tutorial.Tutorial)}
	faqs := &memoryFAQRepo{byQuestion: make(map[string]*faq.FAQ)}
	posts := &memoryBlogRepo{bySlug: make(map[string]*blog.Post)}
	svc := NewSeedService(categories, tutorials, faqs, posts).(*seedService)
	return categories, tutorials, faqs, posts, svc
}

func TestSeedInsertsFixtures(t *testing.T) {
	categories, tutorials, faqs, posts, svc := newSeedFixture()

	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, categories.bySlug, 5)
	assert.Len(t, tutorials.bySlug, 5)
	assert.Len(t, faqs.byQuestion, 5)
	assert.Len(t, posts.bySlug, 1)
}

func TestSeedIsIdempotent(t *testing.T) {
	categories, tutorials, faqs, posts, svc := newSeedFixture()

	require.NoError(t, svc.Seed(context.Background()))
	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, categories.bySlug, 5)
	assert.Len(t, tutorials.bySlug, 5)
	assert.Len(t, faqs.byQuestion, 5)
	assert.Len(t, posts.bySlug, 1)
}

func TestSeedResolvesCategoryIDs(t *testing.T) {
	categories, tutorials, _, _, svc := newSeedFixture()

	require.NoError(t, svc.Seed(context.Background()))

	wifi, ok := tutorials.bySlug["configurar-wifi-mais-rapido"]
	require.True(t, ok)
	internet, ok := categories.bySlug["internet"]
	require.True(t, ok)
	assert.Equal(t, internet.ID, wifi.CategoryID)
}

func TestSeedKeepsExistingRecords(t *testing.T) {
	categories, _, _, _, svc := newSeedFixture()

	existing := &category.Category{ID: "pre-existing", Name: "Internet", Slug: "internet"}
	categories.bySlug["internet"] = existing

	require.NoError(t, svc.Seed(context.Background()))

	assert.Equal(t, "pre-existing", categories.bySlug["internet"].ID)
	assert.Len(t, categories.bySlug, 5)
}
