package flight

import (
	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

// Predicate builds the flight filter for q. Empty filters match everything.
func Predicate(q SearchQuery) search.Predicate[domain.Flight] {
	return search.And(
		endpoint(q.Origin, func(f domain.Flight) domain.Endpoint { return f.Departure }),
		endpoint(q.Destination, func(f domain.Flight) domain.Endpoint { return f.Arrival }),
		class(q.Class),
		maxPrice(search.OptionalFloat(q.MaxPrice)),
		airline(q.Airline),
	)
}

// endpoint matches an airport code exactly or a city by substring.
func endpoint(place string, side func(domain.Flight) domain.Endpoint) search.Predicate[domain.Flight] {
	if place == "" {
		return nil
	}
	return func(f domain.Flight) bool {
		e := side(f)
		return search.EqualFold(e.Airport, place) || search.ContainsFold(e.City, place)
	}
}

func class(c string) search.Predicate[domain.Flight] {
	if c == "" {
		return nil
	}
	return func(f domain.Flight) bool { return search.EqualFold(string(f.Class), c) }
}

func maxPrice(bound *float64) search.Predicate[domain.Flight] {
	if bound == nil {
		return nil
	}
	return func(f domain.Flight) bool { return search.AtMost(f.Price, bound) }
}

func airline(name string) search.Predicate[domain.Flight] {
	if name == "" {
		return nil
	}
	return func(f domain.Flight) bool { return search.ContainsFold(f.Airline, name) }
}

func matchAirport(q string) func(domain.Airport) bool {
	return func(a domain.Airport) bool {
		return search.ContainsFold(a.Code, q) || search.ContainsFold(a.Name, q) || search.ContainsFold(a.City, q)
	}
}
