package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/duvetfinder/backend/internal/domain"
)

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	WeatherCacheTTL    time.Duration
	MaxResults         int
	EnableDebugLogging bool
}

// RecommendationService orchestrates the matching engine around its
// collaborators: the read-only catalog, the weather client and the cache.
type RecommendationService struct {
	catalog         domain.CatalogRepository
	weather         domain.WeatherClient
	cache           domain.CacheRepository
	matchingService *MatchingService
	weatherCacheTTL time.Duration
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	catalog domain.CatalogRepository,
	weather domain.WeatherClient,
	cache domain.CacheRepository,
	config RecommendationServiceConfig,
) *RecommendationService {
	matchingService := NewMatchingService(MatchConfig{
		MaxResults:         config.MaxResults,
		EnableDebugLogging: config.EnableDebugLogging,
	})

	weatherCacheTTL := config.WeatherCacheTTL
	if weatherCacheTTL == 0 {
		weatherCacheTTL = 30 * time.Minute
	}

	return &RecommendationService{
		catalog:         catalog,
		weather:         weather,
		cache:           cache,
		matchingService: matchingService,
		weatherCacheTTL: weatherCacheTTL,
	}
}

// Recommend runs the engine over the catalog for a finalized preference set
// and prepares the finalists for display: match and mismatch explanations,
// the default purchasable variant, the manual-selection list, and (with two
// finalists) the field-level comparison.
func (s *RecommendationService) Recommend(ctx context.Context, prefs domain.Preferences) (*domain.RecommendationSet, error) {
	duvets, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	results := s.matchingService.Rank(duvets, prefs)

	set := &domain.RecommendationSet{}
	for _, r := range results {
		defaultVariant, filtersMet := DefaultVariant(r.Duvet, prefs)
		set.Recommendations = append(set.Recommendations, domain.Recommendation{
			Duvet:             r.Duvet,
			Exact:             r.Exact,
			MismatchReasons:   r.MismatchReasons,
			MatchReasons:      MatchReasons(r.Duvet, prefs),
			DefaultVariant:    defaultVariant,
			VariantFallback:   !filtersMet,
			AvailableVariants: AvailableVariants(r.Duvet, prefs.Insulation),
		})
	}

	if len(results) == 2 {
		set.Differences = Differences(results[0].Duvet, results[1].Duvet)
		set.VerySimilar = len(set.Differences) == 0
	}

	return set, nil
}

// DuvetVariants lists the variants of one item open for manual selection
// under the given insulation filter.
func (s *RecommendationService) DuvetVariants(ctx context.Context, duvetID string, ins domain.Insulation) ([]domain.Variant, error) {
	d, err := s.catalog.Get(ctx, duvetID)
	if err != nil {
		return nil, err
	}
	return AvailableVariants(*d, ins), nil
}

// DuvetVariant resolves an explicit variant pick on one item.
func (s *RecommendationService) DuvetVariant(ctx context.Context, duvetID, variantID string) (*domain.Variant, error) {
	d, err := s.catalog.Get(ctx, duvetID)
	if err != nil {
		return nil, err
	}
	v, err := SelectVariant(*d, variantID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WeatherRecommendation looks up the current temperature for a city and maps
// it to a suggested category.
// Flow: check cache -> weather client -> derive category -> cache -> return
func (s *RecommendationService) WeatherRecommendation(ctx context.Context, city string) (*domain.WeatherReading, error) {
	if strings.TrimSpace(city) == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := weatherCacheKey(city)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if reading, ok := cached.(domain.WeatherReading); ok {
			return &reading, nil
		}
	}

	temp, err := s.weather.CurrentTemperature(ctx, city)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrWeatherAPIFailure, err)
	}

	reading := domain.WeatherReading{
		City:        city,
		Temperature: temp,
		Recommended: CategoryForTemperature(temp),
		FetchedAt:   time.Now(),
	}

	// Cache write failures are non-fatal.
	_ = s.cache.Set(ctx, cacheKey, reading, s.weatherCacheTTL)

	return &reading, nil
}

// weatherCacheKey normalizes a city name into a cache key.
// Format: "weather:{lowercased_city}"
func weatherCacheKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}
