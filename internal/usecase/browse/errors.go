// Package browse implements the pagination engine: it ties the stateless
// chat interface to the paged catalog by reading and writing the per-user
// browse session around every navigation intent.
package browse

import "errors"

// Sentinel errors for browse use case operations. Boundary conditions
// (ErrNoMoreResults, ErrAtFirstPage) are named failures, not faults; the
// gateway renders them as notices and the session is left untouched.
var (
	// ErrInvalidGenre indicates that an empty or unknown genre was requested.
	ErrInvalidGenre = errors.New("invalid genre")

	// ErrNothingFound indicates that the first page for a genre came back
	// empty. No session is created or overwritten in this case.
	ErrNothingFound = errors.New("nothing found for genre")

	// ErrNoSession indicates navigation without a prior genre selection.
	// The user must restart browsing with a genre.
	ErrNoSession = errors.New("no browse session")

	// ErrNoMoreResults indicates that the page past the current one is
	// empty. The session stays on the current page.
	ErrNoMoreResults = errors.New("no more results")

	// ErrAtFirstPage indicates a retreat from page 1.
	ErrAtFirstPage = errors.New("already at first page")

	// ErrDetailNotFound indicates that the catalog has no record for the
	// requested movie id.
	ErrDetailNotFound = errors.New("movie not found")
)
