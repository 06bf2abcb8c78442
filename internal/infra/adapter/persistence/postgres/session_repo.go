// Package postgres provides database/sql implementations of the persistence
// interfaces over the pgx stdlib driver. One row per user for sessions; a
// capped, append-ordered table for history.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/metrics"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
)

// Querier is the slice of database/sql the repos need. Both *sql.DB
// and the database circuit breaker wrapper satisfy it, so callers
// choose whether queries run behind a breaker.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type SessionRepo struct{ db Querier }

func NewSessionRepo(db Querier) repository.SessionRepository {
	return &SessionRepo{db: db}
}

func (repo *SessionRepo) Get(ctx context.Context, userID string) (*entity.Session, error) {
	defer observe("session_get")()

	const query = `
SELECT genre, page, start_index, total_movies, updated_at
FROM sessions
WHERE user_id = $1
LIMIT 1`
	var session entity.Session
	err := repo.db.QueryRowContext(ctx, query, userID).Scan(
		&session.Genre, &session.Page, &session.StartIndex, &session.TotalMovies, &session.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &session, nil
}

func (repo *SessionRepo) Set(ctx context.Context, userID string, session *entity.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	defer observe("session_set")()

	const query = `
INSERT INTO sessions (user_id, genre, page, start_index, total_movies, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
    genre        = EXCLUDED.genre,
    page         = EXCLUDED.page,
    start_index  = EXCLUDED.start_index,
    total_movies = EXCLUDED.total_movies,
    updated_at   = EXCLUDED.updated_at`
	if _, err := repo.db.ExecContext(ctx, query,
		userID, session.Genre, session.Page, session.StartIndex, session.TotalMovies, session.UpdatedAt,
	); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	return nil
}

func (repo *SessionRepo) Clear(ctx context.Context, userID string) error {
	defer observe("session_clear")()

	const query = `DELETE FROM sessions WHERE user_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("Clear: %w", err)
	}
	return nil
}

func (repo *SessionRepo) DeleteIdle(ctx context.Context, cutoff time.Time) (int64, error) {
	defer observe("session_delete_idle")()

	const query = `DELETE FROM sessions WHERE updated_at < $1`
	result, err := repo.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("DeleteIdle: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteIdle: rows affected: %w", err)
	}
	return removed, nil
}

// observe times one repo operation into the db query histogram.
func observe(operation string) func() {
	start := time.Now()
	return func() {
		metrics.RecordDBQuery(operation, time.Since(start))
	}
}
