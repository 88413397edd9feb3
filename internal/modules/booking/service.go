package booking

import (
	"context"
	"errors"
	"fmt"

	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

var cancellableStatuses = []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}

// ListResult is one page of a user's bookings.
type ListResult struct {
	Bookings   []domain.Booking
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Service manages existing bookings. Every call is scoped to the requesting
// user; bookings owned by someone else are reported as not found.
type Service struct {
	bookings BookingRepository
	notifier Notifier
}

func NewService(bookings BookingRepository, notifier Notifier) *Service {
	return &Service{bookings: bookings, notifier: notifier}
}

func (s *Service) List(ctx context.Context, userID int64, f domain.BookingFilter, p search.Page) (*ListResult, error) {
	p = search.NewPage(p.Page, p.Limit)

	rows, total, err := s.bookings.ListByUser(ctx, userID, f, p)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return &ListResult{
		Bookings:   rows,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      int(total),
		TotalPages: p.TotalPages(int(total)),
	}, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	return owned(b, err, userID)
}

func (s *Service) GetByReference(ctx context.Context, userID int64, reference string) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	return owned(b, err, userID)
}

// Cancel moves a pending or confirmed booking to cancelled.
func (s *Service) Cancel(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !b.Cancellable() {
		return nil, domain.InvalidTransition(fmt.Sprintf("Booking cannot be cancelled while %s", b.Status))
	}

	ok, err := s.bookings.UpdateStatus(ctx, id, cancellableStatuses, domain.BookingCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel booking %d: %w", id, err)
	}
	if !ok {
		return nil, domain.InvalidTransition("Booking status changed, please retry")
	}

	b, err = s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking %d: %w", id, err)
	}

	if s.notifier != nil {
		s.notifier.Publish(userID, Event{Type: EventBookingCancelled, Booking: b})
	}
	return b, nil
}

func (s *Service) Stats(ctx context.Context, userID int64) (*domain.BookingStats, error) {
	stats, err := s.bookings.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}
	return stats, nil
}

func owned(b *domain.Booking, err error, userID int64) (*domain.Booking, error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBookingNotFound()
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, errBookingNotFound()
	}
	return b, nil
}
