package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/contact"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// ContactHandler handles HTTP requests for the contact domain.
type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create handles POST /contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateRequest
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

// List handles GET /admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	default:
		logger.Error("contact request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
