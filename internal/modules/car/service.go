package car

import (
	"context"
	"errors"

	"travelbooking/internal/catalog"
	"travelbooking/internal/domain"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/search"
)

type Service struct {
	cars      *catalog.Searcher[domain.Car]
	committer *booking.Committer
}

func NewService(cars *catalog.Searcher[domain.Car], committer *booking.Committer) *Service {
	return &Service{cars: cars, committer: committer}
}

func (s *Service) Search(ctx context.Context, q SearchQuery) (search.Result[domain.Car], error) {
	return s.cars.Search(ctx, q.CacheKey(), Predicate(q), q.Paging())
}

func (s *Service) Get(ctx context.Context, id string) (domain.Car, error) {
	c, err := s.cars.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return c, domain.NotFound("Car not found")
	}
	return c, err
}

func (s *Service) Book(ctx context.Context, userID int64, req BookRequest) (*domain.Booking, error) {
	return booking.Commit[domain.Car](ctx, s.committer, s.cars, bookingPlan{req: req}, userID)
}
