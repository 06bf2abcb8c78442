package repository

import (
	"context"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
)

// SessionRepository manages the per-user browse session. Each user has at
// most one session; writing a new one replaces whatever was there.
type SessionRepository interface {
	// Get retrieves the browse session for a user.
	// Returns (nil, nil) if the user has no session.
	Get(ctx context.Context, userID string) (*entity.Session, error)
	// Set stores the browse session for a user, replacing any existing one.
	// The session must pass entity validation.
	Set(ctx context.Context, userID string, session *entity.Session) error
	// Clear removes the session for a user.
	// Clearing an absent session is not an error.
	Clear(ctx context.Context, userID string) error
	// DeleteIdle removes every session whose UpdatedAt is older than the
	// cutoff. Returns the number of sessions removed.
	DeleteIdle(ctx context.Context, cutoff time.Time) (int64, error)
}
