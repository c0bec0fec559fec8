package http

import (
	"errors"
	"net/http"

	"github.com/duvetfinder/backend/internal/domain"
	"github.com/duvetfinder/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.RecommendationService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "duvetfinder-backend",
		"version": "1.0.0",
	})
}

// RecommendationRequest is the wire form of the five wizard answers. Values
// the engine does not recognize count as "no preference" — the engine itself
// performs no validation, so the mapping happens here.
type RecommendationRequest struct {
	Category   string `json:"category"`
	Allergy    string `json:"allergy"`
	Filling    string `json:"filling"`
	Insulation string `json:"insulation"`
	PriceBand  string `json:"priceBand"`
}

func (r RecommendationRequest) toPreferences() domain.Preferences {
	return domain.Preferences{
		Category:   domain.ParseCategory(r.Category),
		Allergy:    domain.ParseAllergyPreference(r.Allergy),
		Filling:    domain.ParseFilling(r.Filling),
		Insulation: domain.ParseInsulation(r.Insulation),
		PriceBand:  domain.ParsePriceBand(r.PriceBand),
	}
}

// Recommend handles a completed wizard run and returns the top matches. An
// empty recommendation list means no match was found; the client renders a
// "try fewer preferences" notice.
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Recommend(c.Request.Context(), req.toPreferences())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListVariants returns the variants of one duvet open for manual selection,
// optionally filtered by insulation.
func (h *Handler) ListVariants(c *gin.Context) {
	ins := domain.ParseInsulation(c.Query("insulation"))

	variants, err := h.service.DuvetVariants(c.Request.Context(), c.Param("id"), ins)
	if err != nil {
		if errors.Is(err, domain.ErrDuvetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "duvet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list variants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"variants": variants})
}

// GetVariant resolves an explicit variant pick on one duvet.
func (h *Handler) GetVariant(c *gin.Context) {
	variant, err := h.service.DuvetVariant(c.Request.Context(), c.Param("id"), c.Param("variantId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuvetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "duvet not found"})
		case errors.Is(err, domain.ErrVariantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "variant not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve variant"})
		}
		return
	}

	c.JSON(http.StatusOK, variant)
}

// WeatherRecommendation maps the current temperature in a city to a
// suggested duvet category.
func (h *Handler) WeatherRecommendation(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	reading, err := h.service.WeatherRecommendation(c.Request.Context(), city)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		case errors.Is(err, domain.ErrCityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "weather lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, reading)
}
