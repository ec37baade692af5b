package utils

import "time"

// TripDateLayout is the calendar-date wire format for trip start/end dates.
const TripDateLayout = "2006-01-02"

// ParseTripDate parses a "2006-01-02" date. An empty string is not an error:
// it returns the zero time so callers can treat the date as absent.
func ParseTripDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(TripDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TripDateLayout)
}

// FormatDateRange renders a date range for prompts and cache keys.
// Returns "" when no dates were supplied.
func FormatDateRange(start, end time.Time) string {
	switch {
	case start.IsZero() && end.IsZero():
		return ""
	case end.IsZero():
		return FormatTripDate(start)
	case start.IsZero():
		return FormatTripDate(end)
	default:
		return FormatTripDate(start) + " to " + FormatTripDate(end)
	}
}

// DaysBetweenInclusive counts calendar days covered by [start, end],
// so a same-day trip is 1 day. Zero if either endpoint is missing.
func DaysBetweenInclusive(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
