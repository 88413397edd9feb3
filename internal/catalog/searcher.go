package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/pkg/cache"
	"travelbooking/internal/search"
)

// Searcher runs searches over a Store, caching result pages when a cache is configured.
type Searcher[T Item] struct {
	kind  domain.CatalogKind
	store Store[T]
	cache cache.Cache
	ttl   time.Duration
}

// NewSearcher builds a Searcher. c may be nil to disable caching.
func NewSearcher[T Item](kind domain.CatalogKind, store Store[T], c cache.Cache, ttl time.Duration) *Searcher[T] {
	return &Searcher[T]{kind: kind, store: store, cache: c, ttl: ttl}
}

func (s *Searcher[T]) Kind() domain.CatalogKind { return s.kind }

// Search filters the current snapshot. key must identify the predicate; it is
// combined with the page to address cached results.
func (s *Searcher[T]) Search(ctx context.Context, key string, pred search.Predicate[T], p search.Page) (search.Result[T], error) {
	p = search.NewPage(p.Page, p.Limit)
	cacheKey := s.cacheKey(key, p)

	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	items, err := s.store.List(ctx)
	if err != nil {
		return search.Result[T]{}, fmt.Errorf("list %s: %w", s.kind, err)
	}

	res := search.Search(items, pred, p)
	s.toCache(ctx, cacheKey, res)
	return res, nil
}

func (s *Searcher[T]) Get(ctx context.Context, id string) (T, error) {
	return s.store.Get(ctx, id)
}

func (s *Searcher[T]) cacheKey(key string, p search.Page) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.GenerateKey(string(s.kind)+":search", fmt.Sprintf("%s|page=%d|limit=%d", key, p.Page, p.Limit))
}

func (s *Searcher[T]) fromCache(ctx context.Context, key string) (search.Result[T], bool) {
	var res search.Result[T]
	if s.cache == nil {
		return res, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "search cache read failed", "catalog", s.kind, "error", err)
		return res, false
	}
	if raw == "" {
		return res, false
	}
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		slog.WarnContext(ctx, "search cache entry unreadable", "catalog", s.kind, "error", err)
		return res, false
	}
	return res, true
}

func (s *Searcher[T]) toCache(ctx context.Context, key string, res search.Result[T]) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		slog.WarnContext(ctx, "search cache encode failed", "catalog", s.kind, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		slog.WarnContext(ctx, "search cache write failed", "catalog", s.kind, "error", err)
	}
}
