package public

import (
	"math"
	"strings"
	"time"
)

func roundRating(value float64) float64 {
	return math.Round(value*10) / 10
}

// parseDate accepts either a date-only or an RFC3339 timestamp.
func parseDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", trimmed); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
