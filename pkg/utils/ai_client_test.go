package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItineraryClientRequiresCredential(t *testing.T) {
	_, err := NewItineraryClient("openai", "", "gpt-4o-mini")
	assert.Error(t, err)

	_, err = NewItineraryClient("gemini", "", "")
	assert.Error(t, err)
}

func TestNewItineraryClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewItineraryClient("groq", "key", "")
	assert.Error(t, err)
}

func TestNewItineraryClientOpenAI(t *testing.T) {
	client, err := NewItineraryClient("OpenAI", "test-key", "")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
