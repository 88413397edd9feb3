package booking

import (
	"context"

	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

// BookingRepository is the Booking Store.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, f domain.BookingFilter, p search.Page) ([]domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error)
	Stats(ctx context.Context, userID int64) (*domain.BookingStats, error)
}

// Notifier delivers booking events to the owning user's live connections.
type Notifier interface {
	Publish(userID int64, event Event)
}

// Lookup resolves a catalog item by id, returning domain.ErrNotFound when absent.
type Lookup[T any] interface {
	Get(ctx context.Context, id string) (T, error)
}
