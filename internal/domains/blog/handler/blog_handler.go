package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/blog"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// BlogHandler handles HTTP requests for the blog domain.
type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /blog?limit
func (h *BlogHandler) List(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	posts, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBySlug handles GET /blog/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create handles POST /admin/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreateRequest
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

// Delete handles DELETE /admin/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog post deleted"})
}

func writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, blog.ErrNotFound):
		response.NotFound(c, blog.ErrNotFound.Error())
	case errors.Is(err, blog.ErrDuplicateSlug):
		response.Conflict(c, blog.ErrDuplicateSlug.Error())
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	default:
		logger.Error("blog request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
