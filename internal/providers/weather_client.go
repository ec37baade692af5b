package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	mem "tripsmith/pkg/memcache"
	"tripsmith/pkg/utils"
)

// WeatherProvider returns a short natural-language summary of conditions for
// a city and optional date range. Errors are the caller's cue to degrade to
// a fallback string; they never abort the overall request.
type WeatherProvider interface {
	FetchSummary(ctx context.Context, city string, start, end time.Time) (string, error)
}

// OpenWeatherClient calls the OpenWeatherMap current-weather endpoint.
// The date range does not reach the endpoint (current conditions only); it
// scopes the cache key so a new travel window refreshes the lookup.
type OpenWeatherClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      mem.LookupCache
	cacheTTL   time.Duration
}

func NewOpenWeatherClient(baseURL, apiKey string, cache mem.LookupCache) *OpenWeatherClient {
	return &OpenWeatherClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		cache:      cache,
		cacheTTL:   30 * time.Minute,
	}
}

func (c *OpenWeatherClient) FetchSummary(ctx context.Context, city string, start, end time.Time) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openweather api key is not configured")
	}

	cacheKey := "weather|" + strings.ToLower(strings.TrimSpace(city)) + "|" + utils.FormatDateRange(start, end)
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("openweather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openweather http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("openweather bad status: %s", resp.Status)
	}

	var payload struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("openweather decode: %w", err)
	}
	if len(payload.Weather) == 0 {
		return "", fmt.Errorf("openweather response missing conditions")
	}

	summary := fmt.Sprintf("Weather in %s: %s, %.0f–%.0f°C. Pack accordingly.",
		city, capitalize(payload.Weather[0].Description), payload.Main.TempMin, payload.Main.TempMax)

	if c.cache != nil {
		c.cache.Set(cacheKey, summary, c.cacheTTL)
	}
	return summary, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
