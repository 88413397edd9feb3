package search

import "strings"

// Predicate reports whether a catalog item satisfies one search request.
type Predicate[T any] func(T) bool

func MatchAll[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// And combines predicates; nil entries are skipped, so optional filters can be
// passed unconditionally.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	return func(item T) bool {
		for _, p := range active {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// ContainsFold is a case-insensitive substring test.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// EqualFold compares coded identifiers (airport codes, categories).
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// AtLeast and AtMost are inclusive bounds; a nil bound always matches.
func AtLeast(v float64, bound *float64) bool {
	return bound == nil || v >= *bound
}

func AtMost(v float64, bound *float64) bool {
	return bound == nil || v <= *bound
}

// ContainsAllTokens reports whether every requested token is a substring of at
// least one candidate, ignoring case.
func ContainsAllTokens(candidates, tokens []string) bool {
	for _, tok := range tokens {
		found := false
		for _, c := range candidates {
			if ContainsFold(c, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SplitCSV splits a comma-separated filter value into trimmed, non-empty tokens.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
