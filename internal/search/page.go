package search

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a 1-indexed pagination cursor.
type Page struct {
	Page  int
	Limit int
}

// NewPage builds a Page, replacing out-of-range values with the defaults and
// capping the limit at MaxLimit.
func NewPage(page, limit int) Page {
	return Page{Page: page, Limit: limit}.normalize()
}

// ParsePage reads raw query values. Anything that is not a positive integer
// falls back to the default.
func ParsePage(rawPage, rawLimit string) Page {
	page, err := strconv.Atoi(rawPage)
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		limit = DefaultLimit
	}
	return NewPage(page, limit)
}

// Offset is the zero-based index of the first item on the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Page) normalize() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Page) bounds(total int) (int, int) {
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

func (p Page) totalPages(total int) int {
	return (total + p.Limit - 1) / p.Limit
}

// TotalPages is ceil(total/limit) for an already normalized page.
func (p Page) TotalPages(total int) int {
	return p.normalize().totalPages(total)
}
