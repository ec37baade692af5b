package utils

import "errors"

var (
	ErrCityRequired      = errors.New("city is required")
	ErrInvalidDuration   = errors.New("duration must be at least 1 day")
	ErrInvalidGroupSize  = errors.New("group size must be at least 1")
	ErrInvalidDate       = errors.New("invalid date format")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrInvalidBudgetTier = errors.New("unknown budget tier")

	ErrItineraryGeneration = errors.New("itinerary generation failed")
	ErrEmptyItinerary      = errors.New("model returned an empty itinerary")
)
