package car

import (
	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

// Predicate builds the car filter for q. Cars flagged unavailable never match.
func Predicate(q SearchQuery) search.Predicate[domain.Car] {
	return search.And(
		search.Predicate[domain.Car](available),
		location(q.PickupLocation, func(c domain.Car) string { return c.PickupLocation }),
		location(q.DropoffLocation, func(c domain.Car) string { return c.DropoffLocation }),
		coded(q.Category, func(c domain.Car) string { return string(c.Category) }),
		coded(q.Transmission, func(c domain.Car) string { return string(c.Transmission) }),
		price(search.OptionalFloat(q.MinPrice), search.OptionalFloat(q.MaxPrice)),
	)
}

func available(c domain.Car) bool { return c.Available }

func location(place string, field func(domain.Car) string) search.Predicate[domain.Car] {
	if place == "" {
		return nil
	}
	return func(c domain.Car) bool { return search.ContainsFold(field(c), place) }
}

func coded(want string, field func(domain.Car) string) search.Predicate[domain.Car] {
	if want == "" {
		return nil
	}
	return func(c domain.Car) bool { return search.EqualFold(field(c), want) }
}

func price(lo, hi *float64) search.Predicate[domain.Car] {
	if lo == nil && hi == nil {
		return nil
	}
	return func(c domain.Car) bool {
		return search.AtLeast(c.PricePerDay, lo) && search.AtMost(c.PricePerDay, hi)
	}
}
