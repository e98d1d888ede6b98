package http

import (
	"github.com/gin-gonic/gin"

	"github.com/attriflow/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		attributes := v1.Group("/attributes")
		{
			attributes.POST("/extract", handler.ExtractAttributes)
			attributes.POST("/update", handler.UpdateAttributes)
		}

		v1.POST("/chat", handler.Chat)
	}

	return router
}
