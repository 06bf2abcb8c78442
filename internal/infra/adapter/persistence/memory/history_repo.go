package memory

import (
	"context"
	"sync"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
)

type HistoryRepo struct {
	mu      sync.RWMutex
	entries map[string][]entity.HistoryEntry // oldest first
}

func NewHistoryRepo() repository.HistoryRepository {
	return &HistoryRepo{entries: make(map[string][]entity.HistoryEntry)}
}

func (repo *HistoryRepo) Append(_ context.Context, userID string, entries []entity.HistoryEntry, cap int) error {
	if len(entries) == 0 {
		return nil
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	window := repo.entries[userID]
	for _, entry := range entries {
		if containsMovie(window, entry) {
			continue
		}
		window = append(window, entry)
	}

	// Evict oldest entries beyond the cap.
	if cap > 0 && len(window) > cap {
		window = window[len(window)-cap:]
	}

	repo.entries[userID] = window
	return nil
}

func (repo *HistoryRepo) Recent(_ context.Context, userID string, n int) ([]entity.HistoryEntry, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	window := repo.entries[userID]
	if n > len(window) {
		n = len(window)
	}
	if n <= 0 {
		return []entity.HistoryEntry{}, nil
	}

	out := make([]entity.HistoryEntry, n)
	copy(out, window[len(window)-n:])
	return out, nil
}

func (repo *HistoryRepo) Clear(_ context.Context, userID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.entries, userID)
	return nil
}

func (repo *HistoryRepo) DeleteIdle(_ context.Context, cutoff time.Time) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var removed int64
	for userID, window := range repo.entries {
		kept := window[:0]
		for _, entry := range window {
			if entry.ViewedAt.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, entry)
		}
		if len(kept) == 0 {
			delete(repo.entries, userID)
			continue
		}
		repo.entries[userID] = kept
	}
	return removed, nil
}

func containsMovie(window []entity.HistoryEntry, entry entity.HistoryEntry) bool {
	for _, existing := range window {
		if existing.SameMovie(entry) {
			return true
		}
	}
	return false
}
