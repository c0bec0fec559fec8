package domain

import (
	"context"
	"time"
)

// CatalogRepository is the read-only view of the duvet catalog. The engine
// never depends on how the catalog is sourced.
type CatalogRepository interface {
	All(ctx context.Context) ([]Duvet, error)
	Get(ctx context.Context, id string) (*Duvet, error)
}

// WeatherClient defines the interface for the external weather collaborator.
// It only supplies a current temperature; the category lookup it drives is a
// pure function in the usecase layer.
type WeatherClient interface {
	CurrentTemperature(ctx context.Context, city string) (float64, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
