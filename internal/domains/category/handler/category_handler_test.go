package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoriafacil-backend/internal/domains/category"
)

type stubService struct {
	categories map[string]*category.Category
}

func newStubService() *stubService {
	return &stubService{categories: make(map[string]*category.Category)}
}

func (s *stubService) List(_ context.Context) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubService) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	c, ok := s.categories[slug]
	if !ok {
		return nil, category.ErrNotFound
	}
	return c, nil
}

func (s *stubService) Create(_ context.Context, req *category.CreateRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, exists := s.categories[req.Slug]; exists {
		return nil, category.ErrDuplicateSlug
	}
	c := category.NewCategory(req)
	s.categories[req.Slug] = c
	return c, nil
}

func (s *stubService) Delete(_ context.Context, id string) error {
	for slug, c := range s.categories {
		if c.ID == id {
			delete(s.categories, slug)
			return nil
		}
	}
	return category.ErrNotFound
}

func newTestRouter(svc category.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoryHandler(svc)
	router := gin.New()
	router.GET("/categories", h.List)
	router.GET("/categories/:slug", h.GetBySlug)
	router.POST("/admin/categories", h.Create)
	router.DELETE("/admin/categories/:id", h.Delete)
	return router
}

func TestGetBySlugNotFound(t *testing.T) {
	router := newTestRouter(newStubService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCreateAndGet(t *testing.T) {
	router := newTestRouter(newStubService())

	body := `{"name":"Internet","slug":"internet","description":"Tutoriais sobre internet"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/categories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var created category.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "folder", created.Icon)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/internet", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	router := newTestRouter(newStubService())
	body := `{"name":"Internet","slug":"internet"}`

	for i, wantStatus := range []int{http.StatusOK, http.StatusConflict} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/categories", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, wantStatus, w.Code, "attempt %d", i+1)
	}
}

func TestCreateValidationError(t *testing.T) {
	router := newTestRouter(newStubService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/categories", strings.NewReader(`{"name":"Internet"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestDeleteMissing(t *testing.T) {
	router := newTestRouter(newStubService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/categories/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
