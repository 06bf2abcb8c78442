// Package memory provides in-process implementations of the persistence
// interfaces. They are the default backing when DATABASE_URL is not set and
// double as fakes in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
)

type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

func NewSessionRepo() repository.SessionRepository {
	return &SessionRepo{sessions: make(map[string]entity.Session)}
}

func (repo *SessionRepo) Get(_ context.Context, userID string) (*entity.Session, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	session, ok := repo.sessions[userID]
	if !ok {
		return nil, nil
	}
	// Copy so callers cannot mutate the stored session.
	out := session
	return &out, nil
}

func (repo *SessionRepo) Set(_ context.Context, userID string, session *entity.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.sessions[userID] = *session
	return nil
}

func (repo *SessionRepo) Clear(_ context.Context, userID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.sessions, userID)
	return nil
}

func (repo *SessionRepo) DeleteIdle(_ context.Context, cutoff time.Time) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var removed int64
	for userID, session := range repo.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(repo.sessions, userID)
			removed++
		}
	}
	return removed, nil
}
