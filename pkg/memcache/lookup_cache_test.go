package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookupStoreSetGet(t *testing.T) {
	store := NewLookupStore()

	store.Set("weather|paris|", "Sunny", time.Minute)

	value, ok := store.Get("weather|paris|")
	assert.True(t, ok)
	assert.Equal(t, "Sunny", value)
}

func TestLookupStoreMiss(t *testing.T) {
	store := NewLookupStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestLookupStoreExpiry(t *testing.T) {
	store := NewLookupStore()

	store.Set("weather|paris|", "Sunny", -time.Second)

	_, ok := store.Get("weather|paris|")
	assert.False(t, ok)
}

func TestLookupStoreOverwrite(t *testing.T) {
	store := NewLookupStore()

	store.Set("k", "old", time.Minute)
	store.Set("k", "new", time.Minute)

	value, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", value)
}
