// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as MovieSummary, Session and
// HistoryEntry, along with their validation rules and domain-specific errors.
package entity

// MovieSummary represents one movie row in a catalog search result.
// Rating and PosterURL are nullable because the upstream catalog omits them
// for obscure titles.
type MovieSummary struct {
	ID        string
	Name      string
	Year      int
	Rating    *float64
	PosterURL *string
}

// WatchLink points to an external platform where a movie can be watched.
type WatchLink struct {
	Name string
	URL  string
}

// MovieDetail represents the full catalog record for a single movie.
// It extends MovieSummary with descriptive fields and watch-platform links.
type MovieDetail struct {
	MovieSummary
	Description string
	Runtime     int // minutes, 0 when unknown
	Genres      []string
	WatchLinks  []WatchLink
}

// DisplayName returns the movie name or a placeholder when the catalog
// returned an unnamed record.
func (m *MovieSummary) DisplayName() string {
	if m.Name == "" {
		return "Untitled"
	}
	return m.Name
}
