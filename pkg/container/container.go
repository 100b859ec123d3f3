package container

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tutoriafacil-backend/internal/config"
	"tutoriafacil-backend/internal/infrastructure/database"
	"tutoriafacil-backend/pkg/ai"
	"tutoriafacil-backend/pkg/logger"

	"tutoriafacil-backend/internal/domains/blog"
	blogHandler "tutoriafacil-backend/internal/domains/blog/handler"
	blogRepo "tutoriafacil-backend/internal/domains/blog/repository"
	blogService "tutoriafacil-backend/internal/domains/blog/service"

	"tutoriafacil-backend/internal/domains/category"
	categoryHandler "tutoriafacil-backend/internal/domains/category/handler"
	categoryRepo "tutoriafacil-backend/internal/domains/category/repository"
	categoryService "tutoriafacil-backend/internal/domains/category/service"

	"tutoriafacil-backend/internal/domains/chat"
	chatHandler "tutoriafacil-backend/internal/domains/chat/handler"
	chatService "tutoriafacil-backend/internal/domains/chat/service"
	chatSession "tutoriafacil-backend/internal/domains/chat/session"

	"tutoriafacil-backend/internal/domains/comment"
	commentHandler "tutoriafacil-backend/internal/domains/comment/handler"
	commentRepo "tutoriafacil-backend/internal/domains/comment/repository"
	commentService "tutoriafacil-backend/internal/domains/comment/service"

	"tutoriafacil-backend/internal/domains/contact"
	contactHandler "tutoriafacil-backend/internal/domains/contact/handler"
	contactRepo "tutoriafacil-backend/internal/domains/contact/repository"
	contactService "tutoriafacil-backend/internal/domains/contact/service"

	"tutoriafacil-backend/internal/domains/faq"
	faqHandler "tutoriafacil-backend/internal/domains/faq/handler"
	faqRepo "tutoriafacil-backend/internal/domains/faq/repository"
	faqService "tutoriafacil-backend/internal/domains/faq/service"

	"tutoriafacil-backend/internal/domains/seed"
	seedHandler "tutoriafacil-backend/internal/domains/seed/handler"
	seedService "tutoriafacil-backend/internal/domains/seed/service"

	"tutoriafacil-backend/internal/domains/tutorial"
	tutorialHandler "tutoriafacil-backend/internal/domains/tutorial/handler"
	tutorialRepo "tutoriafacil-backend/internal/domains/tutorial/repository"
	tutorialService "tutoriafacil-backend/internal/domains/tutorial/service"
)

// Container is the root of the dependency graph. Everything in it is a
// process-lifetime singleton, built once at startup in dependency order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client

	CategoryRepo category.Repository
	TutorialRepo tutorial.Repository
	CommentRepo  comment.Repository
	BlogRepo     blog.Repository
	FAQRepo      faq.Repository
	ContactRepo  contact.Repository

	CategoryService category.Service
	TutorialService tutorial.Service
	CommentService  comment.Service
	BlogService     blog.Service
	FAQService      faq.Service
	ContactService  contact.Service
	ChatService     chat.Service
	SeedService     seed.Service

	CategoryHandler *categoryHandler.CategoryHandler
	TutorialHandler *tutorialHandler.TutorialHandler
	CommentHandler  *commentHandler.CommentHandler
	BlogHandler     *blogHandler.BlogHandler
	FAQHandler      *faqHandler.FAQHandler
	ContactHandler  *contactHandler.ContactHandler
	ChatHandler     *chatHandler.ChatHandler
	SeedHandler     *seedHandler.SeedHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db
	logger.Info("database connected", map[string]interface{}{
		"host": cfg.Database.Host,
		"name": cfg.Database.Database,
	})

	c.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	// Redis only backs chat session continuity; a failure here should not
	// keep the API from starting.
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		logger.Error("redis connection failed, chat sessions will not persist", err)
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.TutorialRepo = tutorialRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(pool)
	c.FAQRepo = faqRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.TutorialService = tutorialService.NewTutorialService(c.TutorialRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.FAQService = faqService.NewFAQService(c.FAQRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo)

	// The generator stays nil without a credential; the chat endpoint
	// reports a configuration error while everything else works.
	var generator ai.TextGenerator
	if c.Config.AI.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(c.Config.AI.GeminiAPIKey)
		if err == nil {
			generator = ai.NewGeminiGenerator(client, c.Config.AI.Model)
		}
	}
	sessions := chatSession.NewRedisStore(c.Redis, c.Config.AI.SessionTTL)
	c.ChatService = chatService.NewChatService(
		generator,
		sessions,
		c.TutorialRepo,
		c.FAQRepo,
		c.Config.AI.Timeout,
	)

	c.SeedService = seedService.NewSeedService(
		c.CategoryRepo,
		c.TutorialRepo,
		c.FAQRepo,
		c.BlogRepo,
	)
}

func (c *Container) initHandlers() {
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.TutorialHandler = tutorialHandler.NewTutorialHandler(c.TutorialService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.FAQHandler = faqHandler.NewFAQHandler(c.FAQService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.ChatHandler = chatHandler.NewChatHandler(c.ChatService)
	c.SeedHandler = seedHandler.NewSeedHandler(c.SeedService)
}

// Cleanup releases process-lifetime resources. Deferred from Serve so it
// runs on graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
}
