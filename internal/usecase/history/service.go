// Package history provides the bounded viewing-history use case. Every
// detail view appends one projected entry; the per-user log never grows past
// the configured cap, evicting oldest entries first.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
)

const (
	// DefaultCap bounds the per-user history.
	DefaultCap = 20

	// DefaultRecentN is how many entries a "show history" intent renders.
	DefaultRecentN = 5
)

// Service provides viewing-history use cases.
type Service struct {
	Repo repository.HistoryRepository
	Cap  int

	now func() time.Time
}

// NewService creates a history service with the given repository and cap.
// A non-positive cap falls back to DefaultCap.
func NewService(repo repository.HistoryRepository, cap int) *Service {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Service{Repo: repo, Cap: cap, now: time.Now}
}

// CapFromEnv reads HISTORY_CAP, falling back to DefaultCap when unset or
// invalid.
func CapFromEnv() int {
	raw := os.Getenv("HISTORY_CAP")
	if raw == "" {
		return DefaultCap
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		slog.Warn("invalid HISTORY_CAP, using default",
			slog.String("value", raw),
			slog.Int("default", DefaultCap))
		return DefaultCap
	}
	return val
}

// RecordView projects a catalog detail record into a history entry and
// appends it. Exact structural duplicates already in the window are skipped
// by the store.
func (s *Service) RecordView(ctx context.Context, userID string, detail *entity.MovieDetail) error {
	if detail == nil {
		return nil
	}

	entry := entity.HistoryEntry{
		MovieID:  detail.ID,
		Name:     detail.Name,
		Year:     detail.Year,
		ViewedAt: s.clock()(),
	}
	if detail.Rating != nil {
		value := *detail.Rating
		entry.Rating = &value
	}
	if detail.PosterURL != nil {
		value := *detail.PosterURL
		entry.PosterURL = &value
	}

	if err := s.Repo.Append(ctx, userID, []entity.HistoryEntry{entry}, s.Cap); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// Recent returns up to n of the user's most recent entries, oldest of the
// returned window first. A non-positive n uses DefaultRecentN; n is capped
// at the history cap since nothing older survives.
func (s *Service) Recent(ctx context.Context, userID string, n int) ([]entity.HistoryEntry, error) {
	if n <= 0 {
		n = DefaultRecentN
	}
	if n > s.Cap {
		n = s.Cap
	}

	entries, err := s.Repo.Recent(ctx, userID, n)
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	return entries, nil
}

// Clear removes all history for a user.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.Repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Service) clock() func() time.Time {
	if s.now == nil {
		return time.Now
	}
	return s.now
}
