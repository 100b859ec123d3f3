package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/tutorial"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// TutorialHandler handles HTTP requests for the tutorial domain.
type TutorialHandler struct {
	service tutorial.Service
}

func NewTutorialHandler(service tutorial.Service) *TutorialHandler {
	return &TutorialHandler{service: service}
}

// List handles GET /tutorials?category&featured&search&limit
func (h *TutorialHandler) List(c *gin.Context) {
	filter := tutorial.ListFilter{
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			response.BadRequest(c, "featured must be a boolean")
			return
		}
		filter.Featured = &featured
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	tutorials, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tutorials)
}

// GetBySlug handles GET /tutorials/:slug — the read increments the view
// counter and the payload carries the post-increment value.
func (h *TutorialHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create handles POST /admin/tutorials
func (h *TutorialHandler) Create(c *gin.Context) {
	var req tutorial.CreateRequest
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

// Update handles PUT /admin/tutorials/:id with partial-update semantics.
func (h *TutorialHandler) Update(c *gin.Context) {
	var req tutorial.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /admin/tutorials/:id
func (h *TutorialHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tutorial deleted"})
}

// Rate handles POST /tutorials/:slug/rate (public).
func (h *TutorialHandler) Rate(c *gin.Context) {
	var req tutorial.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	if err := h.service.Rate(c.Request.Context(), c.Param("slug"), &req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating recorded"})
}

func writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, tutorial.ErrNotFound):
		response.NotFound(c, tutorial.ErrNotFound.Error())
	case errors.Is(err, tutorial.ErrDuplicateSlug):
		response.Conflict(c, tutorial.ErrDuplicateSlug.Error())
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	default:
		logger.Error("tutorial request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
