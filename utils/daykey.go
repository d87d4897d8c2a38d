package utils

import (
	"fmt"
	"time"
)

// DayKeyLayout is the canonical challenge-day format, e.g. "2024-05-01"
const DayKeyLayout = "2006-01-02"

// DayKeyFor maps any instant to its challenge day. Days are partitioned in UTC
// so that every client sees the same scramble regardless of local timezone.
func DayKeyFor(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// Today returns the challenge day for the current instant
func Today() string {
	return DayKeyFor(time.Now())
}

// ParseDayKey validates a caller-supplied day key and returns it in canonical form
func ParseDayKey(s string) (string, error) {
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid day key %q: expected YYYY-MM-DD", s)
	}
	return t.Format(DayKeyLayout), nil
}

// PreviousDayKey returns the day key of the calendar day before the given one
func PreviousDayKey(key string) string {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DayKeyLayout)
}
