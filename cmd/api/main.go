package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tutoriafacil-backend/pkg/logger"
)

func main() {
	// .env is for local development; deployed environments set real
	// environment variables.
	dotenvErr := godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Init(env)

	if dotenvErr != nil {
		logger.Debug("no .env file found, using system environment variables")
	}

	Serve()
}
