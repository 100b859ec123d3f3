package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/chat"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// ChatHandler handles the AI chat endpoint.
type ChatHandler struct {
	service chat.Service
}

func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	result, err := h.service.Chat(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func writeError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	case errors.Is(err, chat.ErrNotConfigured):
		response.ConfigurationError(c, chat.ErrNotConfigured.Error())
	case errors.Is(err, chat.ErrUpstreamTimeout):
		response.GatewayTimeout(c, chat.ErrUpstreamTimeout.Error())
	case errors.Is(err, chat.ErrUpstream):
		logger.Error("chat upstream call failed", err)
		response.BadGateway(c, chat.ErrUpstream.Error())
	default:
		logger.Error("chat request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
