// Package search filters, orders and paginates catalog snapshots.
//
// Every function here is pure: the same catalog slice and inputs always give
// the same result, and the input slice is never reordered or modified.
package search

import (
	"sort"

	"travelbooking/internal/domain"
)

// Item is anything that can be listed in a catalog and priced.
type Item interface {
	ItemID() string
	UnitPrice() float64
}

// Result is one page of a filtered, price-ordered catalog.
type Result[T Item] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Search keeps the items matching pred, orders them by ascending unit price
// (equal prices keep catalog order) and returns the requested page.
// A page past the end yields an empty, non-nil Items slice.
func Search[T Item](catalog []T, pred Predicate[T], p Page) Result[T] {
	p = p.normalize()
	if pred == nil {
		pred = MatchAll[T]()
	}

	matched := make([]T, 0, len(catalog))
	for _, item := range catalog {
		if pred(item) {
			matched = append(matched, item)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UnitPrice() < matched[j].UnitPrice()
	})

	total := len(matched)
	start, end := p.bounds(total)
	items := make([]T, end-start)
	copy(items, matched[start:end])

	return Result[T]{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: p.totalPages(total),
	}
}

// GetByID returns the catalog item with the given ID.
func GetByID[T Item](catalog []T, id string) (T, error) {
	for _, item := range catalog {
		if item.ItemID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}
