package search

import (
	"math"
	"strconv"
	"strings"
)

// OptionalFloat parses a numeric filter. Empty or malformed input is treated
// as absent rather than rejected.
func OptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
