package car

import (
	"travelbooking/internal/domain"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/pkg/isodate"
	"travelbooking/internal/pkg/validator"
)

type bookingPlan struct {
	req BookRequest
}

func (p bookingPlan) Type() domain.BookingType { return domain.BookingCar }
func (p bookingPlan) ItemID() string           { return p.req.CarID }

func (p bookingPlan) Available(c domain.Car) error {
	if !c.Available {
		return domain.Unavailable("Car is not available")
	}
	return nil
}

func (p bookingPlan) Validate(domain.Car) error {
	if errs := validator.Validate(p.req); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	_, err := p.days()
	return err
}

// days is the number of started 24h rental periods.
func (p bookingPlan) days() (int, error) {
	pickup, err := isodate.Parse(p.req.PickupDate)
	if err != nil {
		return 0, domain.NewValidationError("pickupDate", "must be a valid ISO 8601 date")
	}
	dropoff, err := isodate.Parse(p.req.DropoffDate)
	if err != nil {
		return 0, domain.NewValidationError("dropoffDate", "must be a valid ISO 8601 date")
	}
	n := isodate.WholeDays(pickup, dropoff)
	if n < 1 {
		return 0, domain.NewValidationError("dropoffDate", "must be at least one day after pickup")
	}
	return n, nil
}

func (p bookingPlan) Quote(c domain.Car) (booking.Quote, error) {
	days, err := p.days()
	if err != nil {
		return booking.Quote{}, err
	}

	return booking.Quote{
		UnitPrice: c.PricePerDay,
		Quantity:  days,
		Currency:  c.Currency,
		Details: domain.CarDetails{
			Car: domain.CarSnapshot{
				ID:       c.ID,
				Make:     c.Make,
				Model:    c.Model,
				Year:     c.Year,
				Category: c.Category,
				Image:    c.Image,
			},
			PickupDate:    p.req.PickupDate,
			DropoffDate:   p.req.DropoffDate,
			Days:          days,
			DriverDetails: *p.req.DriverDetails,
			Insurance:     p.req.Insurance,
			PricePerDay:   c.PricePerDay,
		},
	}, nil
}
