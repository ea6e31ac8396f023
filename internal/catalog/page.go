// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package catalog

import "strconv"

// Page is one slice of a paginated result set.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// ParsePage interprets a raw page query parameter. Non-numeric or missing
// values default to page 1; clamping to the valid range happens in Paginate.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate slices items into the requested page. Page numbers below 1 are
// treated as 1 and numbers past the end return the last page, so a stale
// link never errors. An empty set yields a single empty page.
func Paginate[T any](items []T, number, size int) Page[T] {
	total := len(items)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}

	start := (number - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// PrevNumber returns the previous page number (valid only when HasPrev).
func (p Page[T]) PrevNumber() int { return p.Number - 1 }

// NextNumber returns the next page number (valid only when HasNext).
func (p Page[T]) NextNumber() int { return p.Number + 1 }
