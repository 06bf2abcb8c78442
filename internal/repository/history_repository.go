package repository

import (
	"context"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
)

// HistoryRepository manages the per-user viewing history. The store keeps at
// most cap entries per user; appending beyond the cap evicts the oldest
// entries first.
type HistoryRepository interface {
	// Append records viewed movies for a user, newest last. Entries that
	// duplicate a movie already in the window are skipped. The store
	// enforces the cap after the append.
	Append(ctx context.Context, userID string, entries []entity.HistoryEntry, cap int) error
	// Recent returns up to n of the user's most recent entries, oldest of
	// the returned window first. Returns an empty slice (not nil) when the
	// user has no history.
	Recent(ctx context.Context, userID string, n int) ([]entity.HistoryEntry, error)
	// Clear removes all history for a user.
	Clear(ctx context.Context, userID string) error
	// DeleteIdle removes every history entry viewed before the cutoff.
	// Returns the number of entries removed.
	DeleteIdle(ctx context.Context, cutoff time.Time) (int64, error)
}
