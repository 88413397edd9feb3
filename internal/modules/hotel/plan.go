package hotel

import (
	"travelbooking/internal/domain"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/pkg/isodate"
	"travelbooking/internal/pkg/validator"
)

type bookingPlan struct {
	req BookRequest
}

func (p bookingPlan) Type() domain.BookingType { return domain.BookingHotel }
func (p bookingPlan) ItemID() string           { return p.req.HotelID }

func (p bookingPlan) Available(h domain.Hotel) error {
	room, ok := h.Room(p.req.RoomType)
	if !ok {
		return domain.NotFound("Room type not found")
	}
	if room.Available < p.req.Rooms {
		return domain.Unavailable("Not enough rooms available")
	}
	return nil
}

func (p bookingPlan) Validate(domain.Hotel) error {
	if errs := validator.Validate(p.req); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	_, err := p.nights()
	return err
}

// nights is the number of started days between check-in and check-out.
func (p bookingPlan) nights() (int, error) {
	in, err := isodate.Parse(p.req.CheckIn)
	if err != nil {
		return 0, domain.NewValidationError("checkIn", "must be a valid ISO 8601 date")
	}
	out, err := isodate.Parse(p.req.CheckOut)
	if err != nil {
		return 0, domain.NewValidationError("checkOut", "must be a valid ISO 8601 date")
	}
	n := isodate.WholeDays(in, out)
	if n < 1 {
		return 0, domain.NewValidationError("checkOut", "must be at least one night after check-in")
	}
	return n, nil
}

func (p bookingPlan) Quote(h domain.Hotel) (booking.Quote, error) {
	room, _ := h.Room(p.req.RoomType)
	nights, err := p.nights()
	if err != nil {
		return booking.Quote{}, err
	}

	currency := room.Currency
	if currency == "" {
		currency = h.Currency
	}

	return booking.Quote{
		UnitPrice: room.Price,
		Quantity:  p.req.Rooms * nights,
		Currency:  currency,
		Details: domain.HotelDetails{
			Hotel:           domain.HotelSnapshot{ID: h.ID, Name: h.Name, Location: h.Location},
			Room:            room,
			CheckIn:         p.req.CheckIn,
			CheckOut:        p.req.CheckOut,
			Nights:          nights,
			Guests:          p.req.Guests,
			Rooms:           p.req.Rooms,
			GuestDetails:    p.req.GuestDetails,
			SpecialRequests: p.req.SpecialRequests,
			PricePerNight:   room.Price,
		},
	}, nil
}
