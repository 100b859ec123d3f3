package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/faq"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// FAQHandler handles HTTP requests for the FAQ domain.
type FAQHandler struct {
	service faq.Service
}

func NewFAQHandler(service faq.Service) *FAQHandler {
	return &FAQHandler{service: service}
}

// List handles GET /faqs?category
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// Create handles POST /admin/faqs
func (h *FAQHandler) Create(c *gin.Context) {
	var req faq.CreateRequest
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

// Delete handles DELETE /admin/faqs/:id
func (h *FAQHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "faq deleted"})
}

func writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, faq.ErrNotFound):
		response.NotFound(c, faq.ErrNotFound.Error())
	case errors.Is(err, faq.ErrDuplicateQuestion):
		response.Conflict(c, faq.ErrDuplicateQuestion.Error())
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	default:
		logger.Error("faq request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
