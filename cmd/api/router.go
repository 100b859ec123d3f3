package main

import (
	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/shared/middleware"
	"tutoriafacil-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.Origins),
	)

	api := router.Group("/api")
	{
		api.GET("/", rootHandler(c))
		api.GET("/health", healthCheckHandler(c))
		api.GET("/stats", statsHandler(c))

		setupCategoryRoutes(api, c)
		setupTutorialRoutes(api, c)
		setupCommentRoutes(api, c)
		setupBlogRoutes(api, c)
		setupFAQRoutes(api, c)
		setupContactRoutes(api, c)
		setupChatRoutes(api, c)
		setupAdminRoutes(api, c)
	}

	return router
}

func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	categories := api.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:slug", c.CategoryHandler.GetBySlug)
	}
}

func setupTutorialRoutes(api *gin.RouterGroup, c *container.Container) {
	tutorials := api.Group("/tutorials")
	{
		tutorials.GET("", c.TutorialHandler.List)
		tutorials.GET("/:slug", c.TutorialHandler.GetBySlug)
		// Rating is public by design.
		tutorials.POST("/:slug/rate", c.TutorialHandler.Rate)
		tutorials.GET("/:slug/comments", c.CommentHandler.ListByTutorial)
	}
}

func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/comments", c.CommentHandler.Create)
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blog := api.Group("/blog")
	{
		blog.GET("", c.BlogHandler.List)
		blog.GET("/:slug", c.BlogHandler.GetBySlug)
	}
}

func setupFAQRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/faqs", c.FAQHandler.List)
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/contact", c.ContactHandler.Create)
}

func setupChatRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/chat", c.ChatHandler.Chat)
}

// setupAdminRoutes gathers every mutating endpoint behind the shared
// Basic-auth credential.
func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	admin.Use(middleware.AdminGuard(c.Config.Admin.Username, c.Config.Admin.Password))
	{
		admin.POST("/categories", c.CategoryHandler.Create)
		admin.DELETE("/categories/:id", c.CategoryHandler.Delete)

		admin.POST("/tutorials", c.TutorialHandler.Create)
		admin.PUT("/tutorials/:id", c.TutorialHandler.Update)
		admin.DELETE("/tutorials/:id", c.TutorialHandler.Delete)

		admin.DELETE("/comments/:id", c.CommentHandler.Delete)

		admin.POST("/blog", c.BlogHandler.Create)
		admin.DELETE("/blog/:id", c.BlogHandler.Delete)

		admin.POST("/faqs", c.FAQHandler.Create)
		admin.DELETE("/faqs/:id", c.FAQHandler.Delete)

		admin.GET("/contacts", c.ContactHandler.List)

		admin.POST("/seed", c.SeedHandler.Seed)
	}
}
