package pagination

import "testing"

func TestFirst(t *testing.T) {
	c := First()
	if c.Page != 1 || c.StartIndex != 0 {
		t.Errorf("First() = %+v, want {Page:1 StartIndex:0}", c)
	}
}

func TestForPage(t *testing.T) {
	tests := []struct {
		name           string
		page, pageSize int
		wantStartIndex int
		wantErr        bool
	}{
		{"page 1", 1, 20, 0, false},
		{"page 2", 2, 20, 20, false},
		{"page 10 size 10", 10, 10, 90, false},
		{"zero page", 0, 20, 0, true},
		{"negative page", -3, 20, 0, true},
		{"zero page size", 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ForPage(tt.page, tt.pageSize)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ForPage(%d, %d) error = nil, want error", tt.page, tt.pageSize)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPage(%d, %d) error = %v", tt.page, tt.pageSize, err)
			}
			if c.StartIndex != tt.wantStartIndex {
				t.Errorf("StartIndex = %d, want %d", c.StartIndex, tt.wantStartIndex)
			}
		})
	}
}

func TestCursor_NextPrevRoundTrip(t *testing.T) {
	const pageSize = 20

	c := First()
	for page := 2; page <= 6; page++ {
		c = c.Next(pageSize)
		if c.Page != page {
			t.Fatalf("Next: page = %d, want %d", c.Page, page)
		}
		if c.StartIndex != (page-1)*pageSize {
			t.Fatalf("Next: invariant broken at page %d: start_index = %d", page, c.StartIndex)
		}
	}

	for page := 5; page >= 1; page-- {
		prev, ok := c.Prev(pageSize)
		if !ok {
			t.Fatalf("Prev: unexpected boundary at page %d", c.Page)
		}
		c = prev
		if c.Page != page {
			t.Fatalf("Prev: page = %d, want %d", c.Page, page)
		}
		if c.StartIndex != (page-1)*pageSize {
			t.Fatalf("Prev: invariant broken at page %d: start_index = %d", page, c.StartIndex)
		}
	}
}

func TestCursor_PrevAtFirstPage(t *testing.T) {
	c := First()
	got, ok := c.Prev(20)
	if ok {
		t.Fatal("Prev at page 1 reported ok = true, want false")
	}
	if got != c {
		t.Errorf("Prev at page 1 returned %+v, want the unchanged cursor %+v", got, c)
	}
}

func TestCursor_PrevRefusesNegativeOffset(t *testing.T) {
	// A cursor reached by an arbitrary jump may carry an offset smaller
	// than one page; stepping back must not go negative.
	c := Cursor{Page: 2, StartIndex: 5}
	if _, ok := c.Prev(20); ok {
		t.Fatal("Prev with would-be negative offset reported ok = true, want false")
	}
}

func TestCursor_DisplayRange(t *testing.T) {
	tests := []struct {
		name                string
		cursor              Cursor
		count               int
		wantFirst, wantLast int
	}{
		{"first page full", Cursor{Page: 1, StartIndex: 0}, 20, 1, 20},
		{"second page partial", Cursor{Page: 2, StartIndex: 20}, 5, 21, 25},
		{"empty page", Cursor{Page: 3, StartIndex: 40}, 0, 41, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := tt.cursor.DisplayRange(tt.count)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("DisplayRange(%d) = (%d, %d), want (%d, %d)",
					tt.count, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"zero total", 0, 20, 1},
		{"less than one page", 10, 20, 1},
		{"exactly one page", 20, 20, 1},
		{"one over", 21, 20, 2},
		{"many pages", 100, 20, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTotalPages(tt.total, tt.pageSize); got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
			}
		})
	}
}
