package domain

import "errors"

var (
	// ErrDuvetNotFound is returned when a catalog item cannot be found by ID
	ErrDuvetNotFound = errors.New("duvet not found in catalog")

	// ErrVariantNotFound is returned when an explicit variant pick does not exist on the item
	ErrVariantNotFound = errors.New("variant not found")

	// ErrInvalidCatalog is returned when catalog data fails ingestion validation
	ErrInvalidCatalog = errors.New("invalid catalog data")

	// ErrCatalogUnavailable is returned when the catalog source cannot be read
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCityNotFound is returned when the geocoding lookup has no result for a city
	ErrCityNotFound = errors.New("city not found")

	// ErrWeatherAPIFailure is returned when a weather API request fails
	ErrWeatherAPIFailure = errors.New("weather API request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
