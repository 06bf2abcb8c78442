package entity

import "time"

// Session holds the per-user browse state: the selected genre and the
// pagination cursor into the catalog's result set for that genre.
//
// A session is replaced wholesale on every successful navigation; there are
// no partial updates. A user with no stored session is treated as expired.
type Session struct {
	// Genre is the catalog category the user is browsing. Immutable for the
	// session's lifetime until a new genre is chosen.
	Genre string

	// Page is the 1-based page number of the last successful fetch.
	Page int

	// StartIndex is the 0-based display offset of the first item on the
	// current page, giving items a continuous ordinal across pages.
	StartIndex int

	// TotalMovies is the number of items returned by the last fetch.
	// Diagnostic only; navigation never derives decisions from it.
	TotalMovies int

	// UpdatedAt records the last successful navigation, used by the
	// expiry sweep.
	UpdatedAt time.Time
}

// Validate checks the session invariants.
// Returns a ValidationError describing the first violated field.
func (s *Session) Validate() error {
	if s.Genre == "" {
		return &ValidationError{Field: "genre", Message: "is required"}
	}
	if s.Page < 1 {
		return &ValidationError{Field: "page", Message: "must be at least 1"}
	}
	if s.StartIndex < 0 {
		return &ValidationError{Field: "start_index", Message: "cannot be negative"}
	}
	if s.TotalMovies < 0 {
		return &ValidationError{Field: "total_movies", Message: "cannot be negative"}
	}
	return nil
}
