package main

import (
	"fmt"
	"log"
	"os"

	"github.com/duvetfinder/backend/config"
	httpDelivery "github.com/duvetfinder/backend/internal/delivery/http"
	"github.com/duvetfinder/backend/internal/infrastructure/cache"
	"github.com/duvetfinder/backend/internal/infrastructure/catalog"
	"github.com/duvetfinder/backend/internal/infrastructure/weather"
	"github.com/duvetfinder/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting DuvetFinder Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	catalogRepo, err := catalog.NewRepository(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog from %s: %v", cfg.Catalog.Path, err)
	}

	memoryCache := cache.NewMemoryCache()
	log.Printf("Weather cache TTL: %s", cfg.Cache.TTL)

	weatherClient := weather.NewClient(cfg.Weather.GeocodingURL, cfg.Weather.ForecastURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		weatherClient.SetDebug(true)
		log.Printf("Weather client debug mode enabled")
	}

	// Initialize usecase layer
	recommendationService := usecase.NewRecommendationService(
		catalogRepo,
		weatherClient,
		memoryCache,
		usecase.RecommendationServiceConfig{
			WeatherCacheTTL:    cfg.Cache.TTL,
			MaxResults:         cfg.Matching.MaxResults,
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: maxResults=%d, debug=%v",
		cfg.Matching.MaxResults,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendationService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
