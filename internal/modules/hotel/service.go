package hotel

import (
	"context"
	"errors"

	"travelbooking/internal/catalog"
	"travelbooking/internal/domain"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/search"
)

type Service struct {
	hotels    *catalog.Searcher[domain.Hotel]
	committer *booking.Committer
}

func NewService(hotels *catalog.Searcher[domain.Hotel], committer *booking.Committer) *Service {
	return &Service{hotels: hotels, committer: committer}
}

func (s *Service) Search(ctx context.Context, q SearchQuery) (search.Result[domain.Hotel], error) {
	return s.hotels.Search(ctx, q.CacheKey(), Predicate(q), q.Paging())
}

func (s *Service) Get(ctx context.Context, id string) (domain.Hotel, error) {
	h, err := s.hotels.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return h, domain.NotFound("Hotel not found")
	}
	return h, err
}

// Book prices the stay as room rate x rooms x nights.
func (s *Service) Book(ctx context.Context, userID int64, req BookRequest) (*domain.Booking, error) {
	return booking.Commit[domain.Hotel](ctx, s.committer, s.hotels, bookingPlan{req: req}, userID)
}
