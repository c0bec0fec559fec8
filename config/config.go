package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Weather   WeatherConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog source configuration
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// WeatherConfig holds Open-Meteo API configuration
type WeatherConfig struct {
	GeocodingURL string `mapstructure:"geocoding_url"`
	ForecastURL  string `mapstructure:"forecast_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds matching engine configuration
type MatchingConfig struct {
	MaxResults         int  `mapstructure:"max_results"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/duvetfinder/")

	// Environment variable settings
	v.SetEnvPrefix("DUVETFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Catalog defaults
	v.SetDefault("catalog.path", "data/duvets.json")

	// Weather defaults
	v.SetDefault("weather.geocoding_url", "https://geocoding-api.open-meteo.com")
	v.SetDefault("weather.forecast_url", "https://api.open-meteo.com")

	// Cache defaults
	v.SetDefault("cache.ttl", "30m")

	// Matching defaults
	v.SetDefault("matching.max_results", 2)
	v.SetDefault("matching.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required (set DUVETFINDER_CATALOG_PATH)")
	}

	if config.Weather.GeocodingURL == "" || config.Weather.ForecastURL == "" {
		return fmt.Errorf("weather API URLs must not be empty")
	}

	if config.Matching.MaxResults < 1 {
		return fmt.Errorf("matching max_results must be at least 1, got: %d", config.Matching.MaxResults)
	}

	return nil
}
