package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripDate(t *testing.T) {
	got, err := ParseTripDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 10, got.Day())
}

func TestParseTripDateEmptyIsAbsent(t *testing.T) {
	got, err := ParseTripDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseTripDateInvalid(t *testing.T) {
	_, err := ParseTripDate("June 10, 2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDaysBetweenInclusive(t *testing.T) {
	start, _ := time.Parse(TripDateLayout, "2024-06-10")
	end, _ := time.Parse(TripDateLayout, "2024-06-13")

	assert.Equal(t, 4, DaysBetweenInclusive(start, end))
	assert.Equal(t, 1, DaysBetweenInclusive(start, start))
	assert.Equal(t, 0, DaysBetweenInclusive(end, start))
	assert.Equal(t, 0, DaysBetweenInclusive(time.Time{}, end))
}

func TestFormatDateRange(t *testing.T) {
	start, _ := time.Parse(TripDateLayout, "2024-06-10")
	end, _ := time.Parse(TripDateLayout, "2024-06-13")

	assert.Equal(t, "2024-06-10 to 2024-06-13", FormatDateRange(start, end))
	assert.Equal(t, "2024-06-10", FormatDateRange(start, time.Time{}))
	assert.Equal(t, "", FormatDateRange(time.Time{}, time.Time{}))
}
