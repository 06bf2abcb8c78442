package entity

import "time"

// HistoryEntry is one viewed movie in a user's bounded viewing history.
// Fields are projected from the catalog detail record at view time; the
// entry is a snapshot and is never refreshed when the catalog drifts.
type HistoryEntry struct {
	MovieID   string
	Name      string
	Year      int
	Rating    *float64
	PosterURL *string
	ViewedAt  time.Time
}

// SameMovie reports whether two entries describe the same projected record.
// Comparison is structural (id, name, year, rating, poster), matching the
// best-effort duplicate suppression contract: a changed catalog record for
// the same id is treated as a new entry.
func (e HistoryEntry) SameMovie(other HistoryEntry) bool {
	if e.MovieID != other.MovieID || e.Name != other.Name || e.Year != other.Year {
		return false
	}
	if !equalFloatPtr(e.Rating, other.Rating) {
		return false
	}
	return equalStringPtr(e.PosterURL, other.PosterURL)
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
