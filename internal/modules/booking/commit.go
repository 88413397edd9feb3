package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"travelbooking/internal/domain"
)

const maxReferenceAttempts = 3

// Quote is the server-side price of a booking request.
type Quote struct {
	UnitPrice float64
	Quantity  int
	Currency  string
	Details   domain.BookingDetails
}

// Plan carries one domain's booking rules for a single request.
//
// Available reports a capacity failure (domain.ErrUnavailable) or a missing
// sub-item such as a hotel room type (domain.ErrNotFound). Validate reports
// structural problems as *domain.ValidationError. Quote is called only after
// both pass.
type Plan[T any] interface {
	Type() domain.BookingType
	ItemID() string
	Available(item T) error
	Validate(item T) error
	Quote(item T) (Quote, error)
}

// Committer persists priced bookings.
type Committer struct {
	bookings  BookingRepository
	notifier  Notifier
	reference func(domain.BookingType) string
	now       func() time.Time
}

func NewCommitter(bookings BookingRepository, notifier Notifier) *Committer {
	return &Committer{
		bookings:  bookings,
		notifier:  notifier,
		reference: NewReference,
		now:       time.Now,
	}
}

// Commit books the catalog item named by plan for userID. Checks run in a
// fixed order (existence, availability, request structure) and nothing is
// written unless all of them pass.
//
// Availability is read from the catalog snapshot and not reserved, so two
// concurrent commits can both succeed against the last unit.
func Commit[T any](ctx context.Context, c *Committer, lookup Lookup[T], plan Plan[T], userID int64) (*domain.Booking, error) {
	item, err := lookup.Get(ctx, plan.ItemID())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errItemNotFound(plan.Type())
		}
		return nil, fmt.Errorf("lookup %s %s: %w", plan.Type(), plan.ItemID(), err)
	}

	if err := plan.Available(item); err != nil {
		return nil, err
	}
	if err := plan.Validate(item); err != nil {
		return nil, err
	}

	q, err := plan.Quote(item)
	if err != nil {
		return nil, err
	}
	if q.Quantity < 1 {
		return nil, domain.NewValidationError("", "Booking quantity must be at least 1")
	}

	now := c.now().UTC()
	b := &domain.Booking{
		UserID:      userID,
		Type:        plan.Type(),
		Status:      domain.BookingPending,
		TotalAmount: math.Round(q.UnitPrice*float64(q.Quantity)*100) / 100,
		Currency:    q.Currency,
		Details:     q.Details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.persist(ctx, b); err != nil {
		return nil, err
	}

	c.publish(b, EventBookingCreated)
	return b, nil
}

func (c *Committer) persist(ctx context.Context, b *domain.Booking) error {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		b.BookingReference = c.reference(b.Type)
		err := c.bookings.Create(ctx, b)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("create booking: %w", err)
		}
	}
	return ErrReferenceExhausted
}

func (c *Committer) publish(b *domain.Booking, eventType string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Publish(b.UserID, Event{Type: eventType, Booking: b})
}
