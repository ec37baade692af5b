// cmd/fx/itinerary_fx/module.go
package itinerary_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripsmith/internal/api/controllers"
	"tripsmith/internal/providers"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryClient,
	ProvideCostEstimator,
	ProvideItineraryService,
	ProvideItineraryController,
)

// AIConfig holds configuration for the text-generation client
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideItineraryClient creates the text-generation client based on
// environment variables. Unlike the weather/events keys, a missing model
// credential is fatal: there is no fallback itinerary to substitute.
func ProvideItineraryClient() (utils.ItineraryClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s itinerary client with model: %s", config.Provider, config.Model)

	client, err := utils.NewItineraryClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create itinerary client: %w", err)
	}
	return client, nil
}

func ProvideCostEstimator() services.CostEstimatorInterface {
	return services.NewCostEstimator()
}

// ProvideItineraryService creates the itinerary service with all dependencies
func ProvideItineraryService(
	weather providers.WeatherProvider,
	events providers.EventsProvider,
	cost services.CostEstimatorInterface,
	ai utils.ItineraryClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(weather, events, cost, ai)
}

// ProvideItineraryController creates the itinerary controller
func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    os.Getenv("AI_MODEL"),
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
