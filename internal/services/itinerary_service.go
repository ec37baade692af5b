package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/models/response_models"
	"tripsmith/internal/providers"
	"tripsmith/pkg/utils"
)

// Fallback placeholders embedded in the prompt when a lookup degrades.
// They are user-visible through the response, so keep them readable.
const (
	weatherUnavailableFallback = "Weather data unavailable"
	noEventsFallback           = "No major events found."
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	weather providers.WeatherProvider
	events  providers.EventsProvider
	cost    CostEstimatorInterface
	ai      utils.ItineraryClientInterface
}

func NewItineraryService(
	weather providers.WeatherProvider,
	events providers.EventsProvider,
	cost CostEstimatorInterface,
	ai utils.ItineraryClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		weather: weather,
		events:  events,
		cost:    cost,
		ai:      ai,
	}
}

// GenerateItinerary runs the flat pipeline: validate, look up weather and
// events (both degrade-only, issued concurrently since they are
// independent), estimate costs, assemble the prompt, call the model.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	in, err := s.validateAndNormalize(req)
	if err != nil {
		return nil, err
	}

	var (
		wg             sync.WaitGroup
		weatherSummary string
		events         []providers.Event
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		weatherSummary = s.lookupWeather(ctx, in.City, in.StartDate, in.EndDate)
	}()
	go func() {
		defer wg.Done()
		events = s.lookupEvents(ctx, in.City, in.StartDate, in.EndDate)
	}()
	wg.Wait()
	in.WeatherSummary = weatherSummary
	in.Events = events

	in.Costs = s.cost.Estimate(in.DurationDays, in.GroupSize, in.Tier)

	prompt := BuildItineraryPrompt(in)

	itinerary, err := s.generateWithRetry(ctx, prompt)
	if err != nil {
		log.Printf("Itinerary generation failed: %v", err)
		return nil, utils.ErrItineraryGeneration
	}

	return &response_models.ItineraryResponse{
		Itinerary: itinerary,
		Costs:     in.Costs,
		Weather:   in.WeatherSummary,
		Events:    toEventSummaries(in.Events),
	}, nil
}

// validateAndNormalize rejects invalid input before any outbound call and
// resolves the duration/date-range overlap: when both are supplied and
// disagree, the date range wins and duration is recomputed from it.
func (s *ItineraryService) validateAndNormalize(req request_models.ItineraryRequest) (PromptInput, error) {
	var in PromptInput

	in.City = strings.TrimSpace(req.City)
	if in.City == "" {
		return in, utils.ErrCityRequired
	}
	if req.DurationDays < 1 {
		return in, utils.ErrInvalidDuration
	}
	if req.GroupSize < 1 {
		return in, utils.ErrInvalidGroupSize
	}

	tier, err := ParseBudgetTier(req.Budget)
	if err != nil {
		return in, err
	}

	start, err := utils.ParseTripDate(req.StartDate)
	if err != nil {
		return in, err
	}
	end, err := utils.ParseTripDate(req.EndDate)
	if err != nil {
		return in, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return in, utils.ErrInvalidDateRange
	}

	in.DurationDays = req.DurationDays
	if derived := utils.DaysBetweenInclusive(start, end); derived > 0 && derived != in.DurationDays {
		log.Printf("Duration %d disagrees with date range, using %d days from dates", in.DurationDays, derived)
		in.DurationDays = derived
	}

	in.Interests = req.Interests
	in.Tier = tier
	in.GroupSize = req.GroupSize
	in.Accommodation = req.Accommodation
	in.Transport = req.Transport
	in.Dietary = req.DietaryRestrictions
	in.Accessibility = req.AccessibilityNeeds
	in.StartDate = start
	in.EndDate = end
	return in, nil
}

func (s *ItineraryService) lookupWeather(ctx context.Context, city string, start, end time.Time) string {
	summary, err := s.weather.FetchSummary(ctx, city, start, end)
	if err != nil {
		log.Printf("Weather lookup degraded: %v", err)
		return weatherUnavailableFallback
	}
	if strings.TrimSpace(summary) == "" {
		return weatherUnavailableFallback
	}
	return summary
}

func (s *ItineraryService) lookupEvents(ctx context.Context, city string, start, end time.Time) []providers.Event {
	events, err := s.events.FetchEvents(ctx, city, start, end)
	if err != nil {
		log.Printf("Events lookup degraded: %v", err)
		return nil
	}
	return events
}

// generateWithRetry gives the model one bounded retry on failure. A
// cancelled context is not retried.
func (s *ItineraryService) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	itinerary, err := s.ai.GenerateItinerary(ctx, prompt)
	if err == nil {
		return itinerary, nil
	}
	if ctx.Err() != nil {
		return "", err
	}
	log.Printf("Generation attempt 1 failed, retrying once: %v", err)
	return s.ai.GenerateItinerary(ctx, prompt)
}

func toEventSummaries(events []providers.Event) []response_models.EventSummary {
	out := make([]response_models.EventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, response_models.EventSummary{
			Name:     e.Name,
			Date:     e.Date,
			Venue:    e.Venue,
			Category: e.Category,
		})
	}
	return out
}
