package hotel

import (
	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

// Predicate builds the hotel filter for q. Empty filters match everything.
func Predicate(q SearchQuery) search.Predicate[domain.Hotel] {
	return search.And(
		destination(q.Destination),
		price(search.OptionalFloat(q.MinPrice), search.OptionalFloat(q.MaxPrice)),
		minRating(search.OptionalFloat(q.Rating)),
		amenities(search.SplitCSV(q.Amenities)),
	)
}

func destination(d string) search.Predicate[domain.Hotel] {
	if d == "" {
		return nil
	}
	return func(h domain.Hotel) bool {
		return search.ContainsFold(h.Location.City, d) || search.ContainsFold(h.Location.Country, d)
	}
}

func price(lo, hi *float64) search.Predicate[domain.Hotel] {
	if lo == nil && hi == nil {
		return nil
	}
	return func(h domain.Hotel) bool {
		return search.AtLeast(h.PricePerNight, lo) && search.AtMost(h.PricePerNight, hi)
	}
}

func minRating(r *float64) search.Predicate[domain.Hotel] {
	if r == nil {
		return nil
	}
	return func(h domain.Hotel) bool { return search.AtLeast(h.Rating, r) }
}

func amenities(tokens []string) search.Predicate[domain.Hotel] {
	if len(tokens) == 0 {
		return nil
	}
	return func(h domain.Hotel) bool { return search.ContainsAllTokens(h.Amenities, tokens) }
}
