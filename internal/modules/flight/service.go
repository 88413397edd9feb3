package flight

import (
	"context"
	"errors"
	"strings"

	"travelbooking/internal/catalog"
	"travelbooking/internal/domain"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/search"
)

type Service struct {
	flights   *catalog.Searcher[domain.Flight]
	airports  []domain.Airport
	committer *booking.Committer
}

func NewService(flights *catalog.Searcher[domain.Flight], airports []domain.Airport, committer *booking.Committer) *Service {
	return &Service{flights: flights, airports: airports, committer: committer}
}

func (s *Service) Search(ctx context.Context, q SearchQuery) (search.Result[domain.Flight], error) {
	return s.flights.Search(ctx, q.CacheKey(), Predicate(q), q.Paging())
}

func (s *Service) Get(ctx context.Context, id string) (domain.Flight, error) {
	f, err := s.flights.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return f, domain.NotFound("Flight not found")
	}
	return f, err
}

// SearchAirports matches q against airport code, name and city. A blank q is
// rejected rather than matching every airport.
func (s *Service) SearchAirports(q string) ([]domain.Airport, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.NewValidationError("q", "is required")
	}
	match := matchAirport(q)
	out := make([]domain.Airport, 0)
	for _, a := range s.airports {
		if match(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) Book(ctx context.Context, userID int64, req BookRequest) (*domain.Booking, error) {
	return booking.Commit[domain.Flight](ctx, s.committer, s.flights, bookingPlan{req: req}, userID)
}
