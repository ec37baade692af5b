package utils

import (
	"context"
	"fmt"
	"strings"
)

// ItineraryClientInterface is the one seam the orchestrator needs from a
// text-generation provider: prompt in, itinerary text out.
type ItineraryClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// systemInstruction is shared by every provider implementation so switching
// providers does not change the assistant's framing.
const systemInstruction = "You are an expert travel assistant. " +
	"Create comprehensive day-by-day travel itineraries with specific times, " +
	"locations, estimated costs, and practical tips. " +
	"Include backup indoor activities if weather is unfavorable."

// NewItineraryClient Factory function to create either an OpenAI or Gemini
// client based on config. A missing credential is refused here, at startup:
// the generator has no fallback, so there is no point accepting requests.
func NewItineraryClient(provider, apiKey, model string) (ItineraryClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when using the openai provider")
		}
		return NewOpenAIItineraryClient(apiKey, model), nil
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when using the gemini provider")
		}
		return NewGeminiItineraryClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
