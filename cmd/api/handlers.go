package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/shared/response"
	"tutoriafacil-backend/pkg/container"
	"tutoriafacil-backend/pkg/logger"
)

func rootHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "Tutoria Fácil API",
			"version": c.Config.App.Version,
		})
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			logger.Error("health check failed", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

func statsHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx := ctx.Request.Context()

		tutorials, err := c.TutorialRepo.Count(reqCtx)
		if err != nil {
			logger.Error("stats query failed", err)
			response.InternalServerError(ctx, "something went wrong")
			return
		}
		categories, err := c.CategoryRepo.Count(reqCtx)
		if err != nil {
			logger.Error("stats query failed", err)
			response.InternalServerError(ctx, "something went wrong")
			return
		}
		comments, err := c.CommentRepo.Count(reqCtx)
		if err != nil {
			logger.Error("stats query failed", err)
			response.InternalServerError(ctx, "something went wrong")
			return
		}
		faqs, err := c.FAQRepo.Count(reqCtx)
		if err != nil {
			logger.Error("stats query failed", err)
			response.InternalServerError(ctx, "something went wrong")
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"tutorials":  tutorials,
			"categories": categories,
			"comments":   comments,
			"faqs":       faqs,
		})
	}
}
