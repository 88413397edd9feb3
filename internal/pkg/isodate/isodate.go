// Package isodate parses the ISO-8601 calendar dates and timestamps accepted
// in query strings and booking bodies.
package isodate

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalid = errors.New("invalid ISO-8601 date")

var layouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Parse accepts a date (2024-02-15) or a timestamp (2024-02-15T08:00:00Z).
// Values without a zone are read as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalid
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalid
}

func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// WholeDays returns the number of started 24h periods between from and to,
// i.e. ceil((to-from)/24h). Non-positive spans return 0 or less.
func WholeDays(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return int(d / (24 * time.Hour))
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
