// Package paginate splits ordered sequences into fixed-size, 1-based pages.
//
// Requests that are absent, not an integer, or below 1 resolve to the first
// page. Requests past the last page are clamped to the last page. An empty
// sequence yields a single empty first page. Items are never reordered.
package paginate

import (
	"strconv"
	"strings"
)

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 10

// Window describes the slice of a sequence that makes up one page.
// It is computed from the total count so stores can fetch only Limit rows
// starting at Offset.
type Window struct {
	Number   int
	NumPages int
	Count    int
	PerPage  int
	Offset   int
	Limit    int
}

// ParseNumber converts a raw page query value into a page number.
// Anything that is not a positive integer becomes 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// NewWindow computes the window for the requested page over count items.
func NewWindow(count, perPage int, requested string) Window {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}

	numPages := 1
	if count > 0 {
		numPages = (count + perPage - 1) / perPage
	}

	number := ParseNumber(requested)
	if number > numPages {
		number = numPages
	}

	offset := (number - 1) * perPage
	limit := min(perPage, count-offset)

	return Window{
		Number:   number,
		NumPages: numPages,
		Count:    count,
		PerPage:  perPage,
		Offset:   offset,
		Limit:    limit,
	}
}

// Page is one window over a sequence together with its items.
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Count    int
	PerPage  int
}

// Paginate returns the requested page of items.
func Paginate[T any](items []T, perPage int, requested string) Page[T] {
	w := NewWindow(len(items), perPage, requested)
	return WindowPage(w, items[w.Offset:w.Offset+w.Limit])
}

// WindowPage wraps items that were fetched for w.
func WindowPage[T any](w Window, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:    items,
		Number:   w.Number,
		NumPages: w.NumPages,
		Count:    w.Count,
		PerPage:  w.PerPage,
	}
}

// Len returns the number of items on the page.
func (p Page[T]) Len() int { return len(p.Items) }

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

// HasOtherPages reports whether the sequence spans more than one page.
func (p Page[T]) HasOtherPages() bool { return p.HasNext() || p.HasPrevious() }

// NextPageNumber is meaningful only when HasNext is true.
func (p Page[T]) NextPageNumber() int { return p.Number + 1 }

// PreviousPageNumber is meaningful only when HasPrevious is true.
func (p Page[T]) PreviousPageNumber() int { return p.Number - 1 }

// StartIndex returns the 1-based position of the first item, or 0 when empty.
func (p Page[T]) StartIndex() int {
	if p.Count == 0 {
		return 0
	}
	return (p.Number-1)*p.PerPage + 1
}

// EndIndex returns the 1-based position of the last item.
func (p Page[T]) EndIndex() int {
	if p.Number == p.NumPages {
		return p.Count
	}
	return p.Number * p.PerPage
}

// PageRange returns 1..NumPages for rendering page links.
func (p Page[T]) PageRange() []int {
	r := make([]int, p.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
