package flight

import (
	"net/url"
	"strconv"
	"strings"

	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

const defaultPassengers = 1

// SearchQuery is the flight search boundary. Dates are validated and echoed
// back; the catalog carries fixed schedules so they do not narrow results.
type SearchQuery struct {
	Origin        string `form:"origin"`
	Destination   string `form:"destination"`
	DepartureDate string `form:"departureDate" binding:"omitempty,isodate"`
	ReturnDate    string `form:"returnDate" binding:"omitempty,isodate"`
	Passengers    *int   `form:"passengers" binding:"omitempty,min=1,max=9"`
	Class         string `form:"class" binding:"omitempty,oneofci=economy business first"`
	MaxPrice      string `form:"maxPrice"`
	Airline       string `form:"airline"`
	Page          string `form:"page"`
	Limit         string `form:"limit"`
}

type SearchParams struct {
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departureDate,omitempty"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Passengers    int    `json:"passengers"`
	Class         string `json:"class,omitempty"`
}

func (q SearchQuery) Params() SearchParams {
	passengers := defaultPassengers
	if q.Passengers != nil {
		passengers = *q.Passengers
	}
	return SearchParams{
		Origin:        q.Origin,
		Destination:   q.Destination,
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		Passengers:    passengers,
		Class:         strings.ToLower(q.Class),
	}
}

func (q SearchQuery) Paging() search.Page {
	return search.ParsePage(q.Page, q.Limit)
}

// CacheKey identifies the filters that shape the result set.
func (q SearchQuery) CacheKey() string {
	v := url.Values{}
	set := func(k, s string) {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			v.Set(k, s)
		}
	}
	set("origin", q.Origin)
	set("destination", q.Destination)
	set("class", q.Class)
	set("airline", q.Airline)
	if p := search.OptionalFloat(q.MaxPrice); p != nil {
		v.Set("maxPrice", strconv.FormatFloat(*p, 'f', -1, 64))
	}
	return v.Encode()
}

type AirportQuery struct {
	Q string `form:"q" binding:"required"`
}

// BookRequest carries no price; the total is always computed server-side.
type BookRequest struct {
	FlightID       string             `json:"flightId" binding:"required"`
	Passengers     []domain.Passenger `json:"passengers" binding:"required,min=1,dive"`
	ContactEmail   string             `json:"contactEmail" binding:"required,email"`
	ContactPhone   string             `json:"contactPhone" binding:"required"`
	SeatPreference string             `json:"seatPreference"`
	MealPreference string             `json:"mealPreference"`
}
