package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "tripsmith/pkg/memcache"
)

func TestWeatherFetchSummary(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/data/2.5/weather" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Paris" {
			t.Fatalf("unexpected city: %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Fatalf("unexpected units: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"weather":[{"description":"clear sky"}],"main":{"temp_min":18.2,"temp_max":24.7}}`)
	}))
	defer server.Close()

	client := NewOpenWeatherClient(server.URL, "key", mem.NewLookupStore())
	summary, err := client.FetchSummary(context.Background(), "Paris", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "Weather in Paris: Clear sky, 18–25°C. Pack accordingly.", summary)
	assert.Equal(t, 1, hits)
}

func TestWeatherFetchSummaryCached(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"weather":[{"description":"clear sky"}],"main":{"temp_min":18,"temp_max":25}}`)
	}))
	defer server.Close()

	client := NewOpenWeatherClient(server.URL, "key", mem.NewLookupStore())
	first, err := client.FetchSummary(context.Background(), "Paris", time.Time{}, time.Time{})
	require.NoError(t, err)
	second, err := client.FetchSummary(context.Background(), "Paris", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "second lookup should be served from cache")
}

func TestWeatherFetchSummaryBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewOpenWeatherClient(server.URL, "bad-key", mem.NewLookupStore())
	_, err := client.FetchSummary(context.Background(), "Paris", time.Time{}, time.Time{})
	assert.Error(t, err)
}

func TestWeatherFetchSummaryMissingKey(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewOpenWeatherClient(server.URL, "", mem.NewLookupStore())
	_, err := client.FetchSummary(context.Background(), "Paris", time.Time{}, time.Time{})
	assert.Error(t, err)
	assert.Zero(t, hits, "no request should be made without a credential")
}

func TestWeatherFetchSummaryMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"weather":[]}`)
	}))
	defer server.Close()

	client := NewOpenWeatherClient(server.URL, "key", mem.NewLookupStore())
	_, err := client.FetchSummary(context.Background(), "Paris", time.Time{}, time.Time{})
	assert.Error(t, err)
}
