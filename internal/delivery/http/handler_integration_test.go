package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duvetfinder/backend/config"
	"github.com/duvetfinder/backend/internal/domain"
	"github.com/duvetfinder/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeCatalog struct {
	duvets []domain.Duvet
}

func (f *fakeCatalog) All(ctx context.Context) ([]domain.Duvet, error) {
	return f.duvets, nil
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (*domain.Duvet, error) {
	for i := range f.duvets {
		if f.duvets[i].ID == id {
			return &f.duvets[i], nil
		}
	}
	return nil, domain.ErrDuvetNotFound
}

type fakeWeather struct {
	temperature float64
	err         error
}

func (f *fakeWeather) CurrentTemperature(ctx context.Context, city string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.temperature, nil
}

type fakeCache struct{}

func (fakeCache) Get(ctx context.Context, key string) (interface{}, error) {
	return nil, domain.ErrCacheMiss
}
func (fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (fakeCache) Delete(ctx context.Context, key string) error { return nil }

func (fakeCache) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func testCatalog() []domain.Duvet {
	return []domain.Duvet{
		{
			ID:              "duvet-eider",
			Name:            "Luksus Edderdunsdyne",
			Fillings:        "Islandsk edderdun",
			AllergyFriendly: true,
			Variants: []domain.Variant{
				{ID: "eider-w", Type: "Vinterdyne", Insulation: domain.InsulationWarm, Price: 24995},
			},
		},
		{
			ID:              "duvet-musk",
			Name:            "Moskusdunsdyne",
			Fillings:        "Moskusdun",
			AllergyFriendly: true,
			Variants: []domain.Variant{
				{ID: "musk-s", Type: "Sommerdyne", Insulation: domain.InsulationCool, Price: 3495},
				{ID: "musk-w", Type: "Vinterdyne", Insulation: domain.InsulationWarm, Price: 4295},
			},
		},
	}
}

// setupTestRouter creates a test router with default configuration
func setupTestRouter(weather *fakeWeather) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Matching: config.MatchingConfig{MaxResults: 2},
	}

	service := usecase.NewRecommendationService(
		&fakeCatalog{duvets: testCatalog()},
		weather,
		fakeCache{},
		usecase.RecommendationServiceConfig{MaxResults: cfg.Matching.MaxResults},
	)

	return SetupRouter(cfg, NewHandler(service))
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(&fakeWeather{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q, want healthy", body["status"])
	}
	if body["service"] != "duvetfinder-backend" {
		t.Errorf("service field = %q, want duvetfinder-backend", body["service"])
	}
}

func TestRecommendEndpoint(t *testing.T) {
	router := setupTestRouter(&fakeWeather{})

	t.Run("computes recommendations for a wizard run", func(t *testing.T) {
		payload := `{
			"category": "Vinterdyne",
			"allergy": "allergy_friendly",
			"filling": "eider_down",
			"insulation": "Varm",
			"priceBand": "24000+"
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var set domain.RecommendationSet
		if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(set.Recommendations) != 2 {
			t.Fatalf("recommendations = %d, want 2", len(set.Recommendations))
		}
		if set.Recommendations[0].Duvet.ID != "duvet-eider" {
			t.Errorf("top = %s, want duvet-eider", set.Recommendations[0].Duvet.ID)
		}
		if !set.Recommendations[0].Exact {
			t.Error("top recommendation should be exact")
		}
		if set.Recommendations[1].Exact {
			t.Error("second recommendation should not be exact")
		}
		if len(set.Recommendations[1].MismatchReasons) == 0 {
			t.Error("second recommendation should carry mismatch reasons")
		}
	})

	t.Run("unrecognized answer values count as no preference", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations",
			strings.NewReader(`{"category": "Rumdyne", "insulation": "Lunken"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var set domain.RecommendationSet
		if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		for _, rec := range set.Recommendations {
			if !rec.Exact {
				t.Errorf("%s: no-preference run should be an exact match", rec.Duvet.ID)
			}
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestVariantEndpoints(t *testing.T) {
	router := setupTestRouter(&fakeWeather{})

	t.Run("lists variants sorted by price", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/duvets/duvet-musk/variants", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var body struct {
			Variants []domain.Variant `json:"variants"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Variants) != 2 {
			t.Fatalf("variants = %d, want 2", len(body.Variants))
		}
		if body.Variants[0].ID != "musk-s" {
			t.Errorf("first variant = %s, want musk-s", body.Variants[0].ID)
		}
	})

	t.Run("filters variants by insulation", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/duvets/duvet-musk/variants?insulation=Varm", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var body struct {
			Variants []domain.Variant `json:"variants"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Variants) != 1 || body.Variants[0].ID != "musk-w" {
			t.Errorf("variants = %v, want only musk-w", body.Variants)
		}
	})

	t.Run("unknown duvet", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/duvets/duvet-none/variants", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("resolves a single variant", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/duvets/duvet-musk/variants/musk-w", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var variant domain.Variant
		if err := json.Unmarshal(w.Body.Bytes(), &variant); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if variant.ID != "musk-w" {
			t.Errorf("variant = %s, want musk-w", variant.ID)
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/duvets/duvet-musk/variants/missing", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestWeatherEndpoint(t *testing.T) {
	t.Run("maps temperature to a category", func(t *testing.T) {
		router := setupTestRouter(&fakeWeather{temperature: 2.5})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/recommendation?city=Copenhagen", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var reading domain.WeatherReading
		if err := json.Unmarshal(w.Body.Bytes(), &reading); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if reading.Recommended != domain.CategoryWinter {
			t.Errorf("recommended = %s, want %s", reading.Recommended, domain.CategoryWinter)
		}
	})

	t.Run("missing city", func(t *testing.T) {
		router := setupTestRouter(&fakeWeather{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/recommendation", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		router := setupTestRouter(&fakeWeather{err: domain.ErrCityNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/recommendation?city=Atlantis", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		router := setupTestRouter(&fakeWeather{err: domain.ErrWeatherAPIFailure})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/recommendation?city=Odense", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", w.Code)
		}
	})
}
