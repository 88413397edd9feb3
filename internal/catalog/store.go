// Package catalog holds the read-only catalogs of bookable items and the
// cached search entry point over them.
package catalog

import (
	"context"

	"travelbooking/internal/search"
)

// Item is a bookable catalog entry.
type Item interface {
	search.Item
	PriceCurrency() string
}

// Store yields a snapshot of one catalog. List preserves insertion order;
// Get returns domain.ErrNotFound for an unknown id.
type Store[T Item] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
}

// MemoryStore serves a fixed catalog held in process memory.
type MemoryStore[T Item] struct {
	items []T
}

func NewMemoryStore[T Item](items []T) *MemoryStore[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &MemoryStore[T]{items: cp}
}

func (s *MemoryStore[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore[T]) Get(ctx context.Context, id string) (T, error) {
	return search.GetByID(s.items, id)
}
