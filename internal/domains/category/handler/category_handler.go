package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/category"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// CategoryHandler handles HTTP requests for the category domain.
type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetBySlug handles GET /categories/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create handles POST /admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, category.ErrNotFound):
		response.NotFound(c, category.ErrNotFound.Error())
	case errors.Is(err, category.ErrDuplicateSlug):
		response.Conflict(c, category.ErrDuplicateSlug.Error())
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	default:
		logger.Error("category request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
