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

// Event is one local-event descriptor as the prompt needs it.
type Event struct {
	Name     string `json:"name"`
	Date     string `json:"date,omitempty"`
	Venue    string `json:"venue,omitempty"`
	Category string `json:"category,omitempty"`
}

// EventsProvider lists local events for a city and optional date range.
// An empty slice is a valid result; errors are the caller's cue to degrade.
type EventsProvider interface {
	FetchEvents(ctx context.Context, city string, start, end time.Time) ([]Event, error)
}

// TicketmasterClient calls the Ticketmaster Discovery v2 events endpoint.
type TicketmasterClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      mem.LookupCache
	cacheTTL   time.Duration
	pageSize   int
}

func NewTicketmasterClient(baseURL, apiKey string, cache mem.LookupCache) *TicketmasterClient {
	return &TicketmasterClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		cache:      cache,
		cacheTTL:   30 * time.Minute,
		pageSize:   5,
	}
}

func (c *TicketmasterClient) FetchEvents(ctx context.Context, city string, start, end time.Time) ([]Event, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("ticketmaster api key is not configured")
	}

	cacheKey := "events|" + strings.ToLower(strings.TrimSpace(city)) + "|" + utils.FormatDateRange(start, end)
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			var events []Event
			if err := json.Unmarshal([]byte(cached), &events); err == nil {
				return events, nil
			}
		}
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("city", city)
	q.Set("size", fmt.Sprintf("%d", c.pageSize))
	if !start.IsZero() {
		q.Set("startDateTime", start.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if !end.IsZero() {
		// End of the last trip day, not midnight at its start.
		q.Set("endDateTime", end.UTC().Add(24*time.Hour-time.Second).Format("2006-01-02T15:04:05Z"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/discovery/v2/events.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("ticketmaster bad status: %s", resp.Status)
	}

	var payload struct {
		Embedded struct {
			Events []struct {
				Name  string `json:"name"`
				Dates struct {
					Start struct {
						LocalDate string `json:"localDate"`
					} `json:"start"`
				} `json:"dates"`
				Classifications []struct {
					Segment struct {
						Name string `json:"name"`
					} `json:"segment"`
				} `json:"classifications"`
				Embedded struct {
					Venues []struct {
						Name string `json:"name"`
					} `json:"venues"`
				} `json:"_embedded"`
			} `json:"events"`
		} `json:"_embedded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("ticketmaster decode: %w", err)
	}

	events := make([]Event, 0, len(payload.Embedded.Events))
	for _, e := range payload.Embedded.Events {
		event := Event{
			Name: e.Name,
			Date: e.Dates.Start.LocalDate,
		}
		if event.Name == "" {
			event.Name = "Unnamed Event"
		}
		if len(e.Embedded.Venues) > 0 {
			event.Venue = e.Embedded.Venues[0].Name
		}
		if len(e.Classifications) > 0 {
			event.Category = e.Classifications[0].Segment.Name
		}
		events = append(events, event)
	}

	if c.cache != nil {
		if raw, err := json.Marshal(events); err == nil {
			c.cache.Set(cacheKey, string(raw), c.cacheTTL)
		}
	}
	return events, nil
}
