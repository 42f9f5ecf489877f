package http

import (
	"github.com/gin-gonic/gin"

	"github.com/grocermatch/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Liveness endpoints
	router.GET("/", handler.Home)
	router.GET("/health", handler.HealthCheck)

	// Token-matching endpoint
	router.POST("/query", handler.Query)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		semantic := v1.Group("/semantic")
		{
			semantic.GET("/search", handler.SemanticSearch)
		}
	}

	return router
}
