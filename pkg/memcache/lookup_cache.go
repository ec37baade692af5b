// pkg/mem/lookup_cache.go
package mem

import (
	"sync"
	"time"
)

// LookupCache memoizes provider responses so repeated lookups for the same
// city/date window within the TTL skip the outbound call.
type LookupCache interface {
	Set(key string, value string, ttl time.Duration)

	// Get returns the cached value for key if not expired.
	Get(key string) (string, bool)
}

type entry struct {
	value     string
	expiresAt time.Time
}

type LookupStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewLookupStore() *LookupStore {
	return &LookupStore{
		data: make(map[string]entry),
	}
}

func (s *LookupStore) Set(key string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	// Bounded growth: sweep expired entries once the store gets large.
	if len(s.data) > 1000 {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *LookupStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}
