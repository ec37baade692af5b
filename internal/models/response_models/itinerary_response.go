package response_models

type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
	Miscellaneous float64 `json:"miscellaneous"`
	Total         float64 `json:"total"`
}

type EventSummary struct {
	Name     string `json:"name"`
	Date     string `json:"date,omitempty"`
	Venue    string `json:"venue,omitempty"`
	Category string `json:"category,omitempty"`
}

// ItineraryResponse mirrors the four panels of the planner UI: the generated
// itinerary text plus the context it was built from.
type ItineraryResponse struct {
	Itinerary string         `json:"itinerary"`
	Costs     CostBreakdown  `json:"costs"`
	Weather   string         `json:"weather"`
	Events    []EventSummary `json:"events"`
}
