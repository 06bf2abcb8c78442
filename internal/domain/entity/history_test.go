package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestHistoryEntry_SameMovie(t *testing.T) {
	base := HistoryEntry{
		MovieID:   "301",
		Name:      "The Matrix",
		Year:      1999,
		Rating:    floatPtr(8.5),
		PosterURL: strPtr("https://img.example.com/301.jpg"),
		ViewedAt:  time.Now(),
	}

	tests := []struct {
		name   string
		mutate func(e *HistoryEntry)
		want   bool
	}{
		{"identical entries match", func(e *HistoryEntry) {}, true},
		{"viewed_at is ignored", func(e *HistoryEntry) { e.ViewedAt = e.ViewedAt.Add(time.Hour) }, true},
		{"different id does not match", func(e *HistoryEntry) { e.MovieID = "302" }, false},
		{"different name does not match", func(e *HistoryEntry) { e.Name = "The Matrix Reloaded" }, false},
		{"different year does not match", func(e *HistoryEntry) { e.Year = 2003 }, false},
		{"different rating does not match", func(e *HistoryEntry) { e.Rating = floatPtr(7.2) }, false},
		{"nil rating does not match set rating", func(e *HistoryEntry) { e.Rating = nil }, false},
		{"different poster does not match", func(e *HistoryEntry) { e.PosterURL = strPtr("https://img.example.com/alt.jpg") }, false},
		{"nil poster does not match set poster", func(e *HistoryEntry) { e.PosterURL = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.mutate(&other)
			assert.Equal(t, tt.want, base.SameMovie(other))
		})
	}

	t.Run("both rating nil matches", func(t *testing.T) {
		a := HistoryEntry{MovieID: "1", Name: "x", Year: 2020}
		b := HistoryEntry{MovieID: "1", Name: "x", Year: 2020}
		assert.True(t, a.SameMovie(b))
	})
}
