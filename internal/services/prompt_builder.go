package services

import (
	"fmt"
	"strings"
	"time"

	"tripsmith/internal/models/response_models"
	"tripsmith/internal/providers"
	"tripsmith/pkg/utils"
)

// PromptInput is everything the prompt needs, already resolved: duration
// reconciled with dates, tier parsed, lookups done (or degraded to their
// fallback values, which are included verbatim so the model can acknowledge
// the gap instead of inventing specifics).
type PromptInput struct {
	City           string
	Interests      []string
	DurationDays   int
	Tier           BudgetTier
	GroupSize      int
	Accommodation  string
	Transport      string
	Dietary        string
	Accessibility  string
	StartDate      time.Time
	EndDate        time.Time
	WeatherSummary string
	Events         []providers.Event
	Costs          response_models.CostBreakdown
}

// BuildItineraryPrompt assembles the instruction text for the model.
// Deterministic: identical inputs produce byte-identical prompts.
func BuildItineraryPrompt(in PromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a comprehensive %d-day itinerary for %s based on the following details:\n", in.DurationDays, in.City)
	if dates := utils.FormatDateRange(in.StartDate, in.EndDate); dates != "" {
		fmt.Fprintf(&b, "- Travel dates: %s\n", dates)
	}
	fmt.Fprintf(&b, "- Interests: %s\n", orNone(strings.Join(in.Interests, ", ")))
	fmt.Fprintf(&b, "- Budget tier: %s\n", in.Tier)
	fmt.Fprintf(&b, "- Group size: %d\n", in.GroupSize)
	fmt.Fprintf(&b, "- Accommodation: %s\n", orNone(in.Accommodation))
	fmt.Fprintf(&b, "- Transportation: %s\n", orNone(in.Transport))
	fmt.Fprintf(&b, "- Dietary restrictions: %s\n", orNone(in.Dietary))
	fmt.Fprintf(&b, "- Accessibility needs: %s\n", orNone(in.Accessibility))

	b.WriteString("\nWeather forecast:\n")
	b.WriteString(in.WeatherSummary)
	b.WriteString("\n")

	b.WriteString("\nLocal events:\n")
	if len(in.Events) == 0 {
		b.WriteString(noEventsFallback)
		b.WriteString("\n")
	} else {
		for _, e := range in.Events {
			b.WriteString("- ")
			b.WriteString(e.Name)
			if e.Date != "" {
				fmt.Fprintf(&b, " (%s)", e.Date)
			}
			if e.Venue != "" {
				fmt.Fprintf(&b, " at %s", e.Venue)
			}
			if e.Category != "" {
				fmt.Fprintf(&b, " [%s]", e.Category)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nEstimated budget (USD):\n")
	fmt.Fprintf(&b, "- Accommodation: %.2f\n", in.Costs.Accommodation)
	fmt.Fprintf(&b, "- Food: %.2f\n", in.Costs.Food)
	fmt.Fprintf(&b, "- Activities: %.2f\n", in.Costs.Activities)
	fmt.Fprintf(&b, "- Transport: %.2f\n", in.Costs.Transport)
	fmt.Fprintf(&b, "- Miscellaneous: %.2f\n", in.Costs.Miscellaneous)
	fmt.Fprintf(&b, "- Total: %.2f\n", in.Costs.Total)

	b.WriteString("\nProvide a detailed day-by-day itinerary with specific times, locations, estimated costs, and practical tips. ")
	b.WriteString("Include backup indoor activities if weather is unfavorable. ")
	b.WriteString("If weather or event data above is marked unavailable, acknowledge the gap instead of inventing specifics.\n")

	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
