package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/duvetfinder/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client resolves a city name to its current temperature via the Open-Meteo
// geocoding and forecast APIs.
type Client struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
	rateLimiter  *rate.Limiter
	debug        bool
}

// NewClient creates a new weather client
func NewClient(geocodingURL, forecastURL string) *Client {
	// Open-Meteo's free tier allows roughly 10k requests per day; one
	// request per second with a small burst stays well inside that.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		rateLimiter:  limiter,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// geocodingResponse is the subset of the Open-Meteo geocoding payload we use
type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// forecastResponse is the subset of the Open-Meteo forecast payload we use
type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
	} `json:"current_weather"`
}

// CurrentTemperature geocodes the city and fetches its current temperature in
// degrees Celsius. An unknown city yields domain.ErrCityNotFound.
func (c *Client) CurrentTemperature(ctx context.Context, city string) (float64, error) {
	if c.debug {
		log.Printf("[WEATHER] CurrentTemperature called for city: %q", city)
	}

	lat, lon, err := c.geocode(ctx, city)
	if err != nil {
		return 0, err
	}

	endpoint := fmt.Sprintf("%s/v1/forecast", c.forecastURL)
	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%.4f", lat))
	params.Add("longitude", fmt.Sprintf("%.4f", lon))
	params.Add("current_weather", "true")

	var forecast forecastResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()), &forecast); err != nil {
		return 0, err
	}

	if c.debug {
		log.Printf("[WEATHER] %q (%.4f, %.4f): %.1f°C", city, lat, lon, forecast.CurrentWeather.Temperature)
	}
	return forecast.CurrentWeather.Temperature, nil
}

// geocode resolves a city name to coordinates using the first search hit.
func (c *Client) geocode(ctx context.Context, city string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s/v1/search", c.geocodingURL)
	params := url.Values{}
	params.Add("name", city)
	params.Add("count", "1")

	var geo geocodingResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()), &geo); err != nil {
		return 0, 0, err
	}

	if len(geo.Results) == 0 {
		if c.debug {
			log.Printf("[WEATHER] No geocoding result for city: %q", city)
		}
		return 0, 0, domain.ErrCityNotFound
	}

	return geo.Results[0].Latitude, geo.Results[0].Longitude, nil
}

// getJSON executes a GET request and decodes the JSON response into out.
// Transient failures are retried up to 3 times with exponential backoff.
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "DuvetFinder/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.debug {
				log.Printf("[WEATHER] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrWeatherAPIFailure, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[WEATHER] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrWeatherAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
	return lastErr
}

// exponentialBackoff returns the wait before the next retry: 500ms doubled
// per attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500<<(attempt-1)) * time.Millisecond
}
