// cmd/fx/providers_fx/module.go
package providers_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripsmith/internal/providers"
	mem "tripsmith/pkg/memcache"
)

var Module = fx.Provide(
	ProvideLookupCache,
	ProvideWeatherProvider,
	ProvideEventsProvider,
)

func ProvideLookupCache() *mem.LookupStore {
	return mem.NewLookupStore()
}

// ProvideWeatherProvider creates the OpenWeatherMap client. A missing key is
// not fatal: the lookup degrades per request instead.
func ProvideWeatherProvider(cache *mem.LookupStore) providers.WeatherProvider {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		log.Println("OPENWEATHER_API_KEY is not set, weather lookups will degrade to a fallback")
	}
	baseURL := getEnvWithDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org")
	return providers.NewOpenWeatherClient(baseURL, apiKey, cache)
}

// ProvideEventsProvider creates the Ticketmaster Discovery client, with the
// same degrade-on-missing-key policy as weather.
func ProvideEventsProvider(cache *mem.LookupStore) providers.EventsProvider {
	apiKey := os.Getenv("TICKETMASTER_API_KEY")
	if apiKey == "" {
		log.Println("TICKETMASTER_API_KEY is not set, events lookups will degrade to an empty list")
	}
	baseURL := getEnvWithDefault("TICKETMASTER_BASE_URL", "https://app.ticketmaster.com")
	return providers.NewTicketmasterClient(baseURL, apiKey, cache)
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
