package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/comment"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// CommentHandler handles HTTP requests for the comment domain. Creation is
// open to anonymous callers; deletion is admin-gated at the router.
type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByTutorial handles GET /tutorials/:slug/comments. The param slot is
// named slug for the whole tutorials group, but this route carries the
// tutorial id.
func (h *CommentHandler) ListByTutorial(c *gin.Context) {
	comments, err := h.service.ListByTutorial(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create handles POST /comments (public)
func (h *CommentHandler) Create(c *gin.Context) {
	var req comment.CreateRequest
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

// Delete handles DELETE /admin/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

func writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, comment.ErrNotFound):
		response.NotFound(c, comment.ErrNotFound.Error())
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	default:
		logger.Error("comment request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
