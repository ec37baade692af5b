package request_models

// ItineraryRequest carries one planning session's form inputs.
// Dates use the "2006-01-02" layout and are optional; when both are present
// and disagree with duration_days, the date range wins.
type ItineraryRequest struct {
	City                string   `json:"city"`
	Interests           []string `json:"interests"`
	DurationDays        int      `json:"duration_days"`
	Budget              string   `json:"budget"`
	GroupSize           int      `json:"group_size"`
	Accommodation       string   `json:"accommodation"`
	Transport           string   `json:"transport"`
	DietaryRestrictions string   `json:"dietary_restrictions,omitempty"`
	AccessibilityNeeds  string   `json:"accessibility_needs,omitempty"`
	StartDate           string   `json:"start_date,omitempty"`
	EndDate             string   `json:"end_date,omitempty"`
}
