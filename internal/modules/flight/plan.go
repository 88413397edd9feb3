package flight

import (
	"travelbooking/internal/domain"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/pkg/validator"
)

type bookingPlan struct {
	req BookRequest
}

func (p bookingPlan) Type() domain.BookingType { return domain.BookingFlight }
func (p bookingPlan) ItemID() string           { return p.req.FlightID }

func (p bookingPlan) Available(f domain.Flight) error {
	if f.AvailableSeats < len(p.req.Passengers) {
		return domain.Unavailable("Not enough seats available")
	}
	return nil
}

func (p bookingPlan) Validate(domain.Flight) error {
	if errs := validator.Validate(p.req); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (p bookingPlan) Quote(f domain.Flight) (booking.Quote, error) {
	return booking.Quote{
		UnitPrice: f.Price,
		Quantity:  len(p.req.Passengers),
		Currency:  f.Currency,
		Details: domain.FlightDetails{
			Flight: domain.FlightSnapshot{
				ID:           f.ID,
				Airline:      f.Airline,
				FlightNumber: f.FlightNumber,
				Departure:    f.Departure,
				Arrival:      f.Arrival,
				Class:        f.Class,
				Aircraft:     f.Aircraft,
			},
			Passengers:        p.req.Passengers,
			Contact:           domain.Contact{Email: p.req.ContactEmail, Phone: p.req.ContactPhone},
			SeatPreference:    p.req.SeatPreference,
			MealPreference:    p.req.MealPreference,
			PricePerPassenger: f.Price,
		},
	}, nil
}
