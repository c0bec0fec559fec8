package http

import (
	"github.com/duvetfinder/backend/config"
	"github.com/gin-gonic/gin"
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

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.PerIP > 0 {
		v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	}
	{
		v1.POST("/recommendations", handler.Recommend)

		duvets := v1.Group("/duvets")
		{
			duvets.GET("/:id/variants", handler.ListVariants)
			duvets.GET("/:id/variants/:variantId", handler.GetVariant)
		}

		weather := v1.Group("/weather")
		{
			weather.GET("/recommendation", handler.WeatherRecommendation)
		}
	}

	return router
}
