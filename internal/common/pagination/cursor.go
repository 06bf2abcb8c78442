package pagination

import "fmt"

// Cursor is the pagination position inside one genre's result set.
// The invariant StartIndex == (Page-1)*pageSize holds for every cursor
// produced by this package; cursors are value types and never mutated in
// place.
type Cursor struct {
	Page       int // 1-based page number
	StartIndex int // 0-based display offset of the page's first item
}

// First returns the cursor for the first page.
func First() Cursor {
	return Cursor{Page: 1, StartIndex: 0}
}

// ForPage returns the cursor for an arbitrary page at the given page size.
// Returns an error for non-positive pages or page sizes.
func ForPage(page, pageSize int) (Cursor, error) {
	if page < 1 {
		return Cursor{}, fmt.Errorf("page must be at least 1, got %d", page)
	}
	if pageSize < 1 {
		return Cursor{}, fmt.Errorf("page size must be at least 1, got %d", pageSize)
	}
	return Cursor{Page: page, StartIndex: (page - 1) * pageSize}, nil
}

// Next returns the cursor one page forward.
func (c Cursor) Next(pageSize int) Cursor {
	return Cursor{Page: c.Page + 1, StartIndex: c.StartIndex + pageSize}
}

// Prev returns the cursor one page back. ok is false at the first page or
// whenever stepping back would produce a negative offset; the caller must
// treat that as a first-page boundary, not as a new cursor.
func (c Cursor) Prev(pageSize int) (Cursor, bool) {
	if c.Page <= 1 {
		return c, false
	}
	if c.StartIndex-pageSize < 0 {
		return c, false
	}
	return Cursor{Page: c.Page - 1, StartIndex: c.StartIndex - pageSize}, true
}

// DisplayRange returns the inclusive ordinal range [first, last] for count
// items rendered at this cursor. A zero count yields first > last.
func (c Cursor) DisplayRange(count int) (first, last int) {
	return c.StartIndex + 1, c.StartIndex + count
}

// CalculateTotalPages calculates the total number of pages based on total
// items and page size, using ceiling division. A zero total still counts as
// one page.
func CalculateTotalPages(total int64, pageSize int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
