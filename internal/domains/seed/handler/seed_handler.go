package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/domains/seed"
	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/logger"
)

// SeedHandler exposes the fixture loader to admins.
type SeedHandler struct {
	service seed.Service
}

func NewSeedHandler(service seed.Service) *SeedHandler {
	return &SeedHandler{service: service}
}

// Seed handles POST /admin/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.service.Seed(c.Request.Context()); err != nil {
		logger.Error("seed failed", err)
		response.InternalServerError(c, "something went wrong")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dados iniciais criados com sucesso"})
}
