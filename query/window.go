// Package query filters, sorts and paginates in-memory record sequences for
// the list endpoints.
package query

import "strconv"

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Window is an offset-based page over a filtered sequence.
type Window struct {
	Limit  int
	Offset int
}

func DefaultWindow() Window {
	return Window{Limit: DefaultLimit, Offset: DefaultOffset}
}

// ParseWindow parses raw limit and offset query values. A limit that is not a
// positive integer falls back to DefaultLimit and an offset that is not a
// non-negative integer falls back to DefaultOffset.
func ParseWindow(limit, offset string) Window {
	w := DefaultWindow()
	if n, ok := parsePositiveInt(limit); ok {
		w.Limit = n
	}
	if n, ok := parseNonNegativeInt(offset); ok {
		w.Offset = n
	}
	return w
}

// Page is the 1-based page number the window starts on.
func (w Window) Page() int {
	if w.Limit <= 0 {
		return 1
	}
	return w.Offset/w.Limit + 1
}

// Bounds clips the window to a sequence of length n.
func (w Window) Bounds(n int) (start, end int) {
	start = min(max(w.Offset, 0), n)
	end = n
	if w.Limit > 0 && w.Limit < n-start {
		end = start + w.Limit
	}
	return start, end
}

func parsePositiveInt(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseNonNegativeInt(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Result is one page of a filtered sequence. Total counts every match, not
// just the items on the page.
type Result[T any] struct {
	Items  []T
	Total  int
	Window Window
}

// Paginate cuts the window out of items. An offset past the end yields an
// empty page rather than an error.
func Paginate[T any](items []T, w Window) Result[T] {
	start, end := w.Bounds(len(items))
	page := make([]T, end-start)
	copy(page, items[start:end])
	return Result[T]{Items: page, Total: len(items), Window: w}
}
