package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prompt-forge/backend/internal/config"
	config_http "prompt-forge/backend/internal/features/config/presentation/http"
	"prompt-forge/backend/internal/features/enhancement/application"
	"prompt-forge/backend/internal/features/enhancement/infrastructure"
	enhancement_http "prompt-forge/backend/internal/features/enhancement/presentation/http"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Initialize services
	enhancerService := application.NewEnhancerService()
	aiClient := infrastructure.NewOpenAIClient()
	appConfigService := config.NewAppConfigService("config/app_config.json")

	// Enhancement API routes
	apiGroup := r.Group("/api")
	{
		handler := enhancement_http.NewEnhancementHandler(enhancerService, aiClient, appConfigService)
		apiGroup.POST("/enhance", handler.EnhanceHandler)
		apiGroup.POST("/keys/validate", handler.ValidateKeyHandler)
		apiGroup.POST("/test", handler.TestPromptHandler)
	}

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		configHandler := config_http.NewAppConfigHandler(appConfigService)
		configGroup.GET("/app", configHandler.GetAppConfigHandler)
		configGroup.POST("/app", configHandler.SaveAppConfigHandler)
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
