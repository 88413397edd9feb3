package booking

import (
	"errors"

	"travelbooking/internal/domain"
)

var ErrReferenceExhausted = errors.New("could not allocate a unique booking reference")

func errBookingNotFound() error {
	return domain.NotFound("Booking not found")
}

func errItemNotFound(t domain.BookingType) error {
	switch t {
	case domain.BookingFlight:
		return domain.NotFound("Flight not found")
	case domain.BookingHotel:
		return domain.NotFound("Hotel not found")
	case domain.BookingCar:
		return domain.NotFound("Car not found")
	}
	return domain.NotFound("Item not found")
}
