package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
)

type HistoryRepo struct{ db Querier }

func NewHistoryRepo(db Querier) repository.HistoryRepository {
	return &HistoryRepo{db: db}
}

// Append inserts entries newest-last and trims the user's window down to cap
// rows, oldest first. The duplicate check matches the structural comparison
// of entity.HistoryEntry.SameMovie: nullable columns compare with
// IS NOT DISTINCT FROM so two NULL ratings count as equal.
func (repo *HistoryRepo) Append(ctx context.Context, userID string, entries []entity.HistoryEntry, cap int) error {
	if len(entries) == 0 {
		return nil
	}
	defer observe("history_append")()

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Append: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insert = `
INSERT INTO history (user_id, movie_id, name, year, rating, poster_url, viewed_at)
SELECT $1, $2, $3, $4, $5, $6, $7
WHERE NOT EXISTS (
    SELECT 1 FROM history
    WHERE user_id = $1
      AND movie_id = $2
      AND name = $3
      AND year = $4
      AND rating IS NOT DISTINCT FROM $5
      AND poster_url IS NOT DISTINCT FROM $6
)`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, insert,
			userID, entry.MovieID, entry.Name, entry.Year,
			entry.Rating, entry.PosterURL, entry.ViewedAt,
		); err != nil {
			return fmt.Errorf("Append: insert: %w", err)
		}
	}

	if cap > 0 {
		const trim = `
DELETE FROM history
WHERE user_id = $1
  AND id NOT IN (
      SELECT id FROM history
      WHERE user_id = $1
      ORDER BY id DESC
      LIMIT $2
  )`
		if _, err := tx.ExecContext(ctx, trim, userID, cap); err != nil {
			return fmt.Errorf("Append: trim: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Append: commit: %w", err)
	}
	return nil
}

func (repo *HistoryRepo) Recent(ctx context.Context, userID string, n int) ([]entity.HistoryEntry, error) {
	if n <= 0 {
		return []entity.HistoryEntry{}, nil
	}
	defer observe("history_recent")()

	// The inner query picks the most recent n rows; the outer one restores
	// stored order so the oldest of the window comes first.
	const query = `
SELECT movie_id, name, year, rating, poster_url, viewed_at
FROM (
    SELECT id, movie_id, name, year, rating, poster_url, viewed_at
    FROM history
    WHERE user_id = $1
    ORDER BY id DESC
    LIMIT $2
) recent
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, userID, n)
	if err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]entity.HistoryEntry, 0, n)
	for rows.Next() {
		var entry entity.HistoryEntry
		var rating sql.NullFloat64
		var posterURL sql.NullString
		if err := rows.Scan(
			&entry.MovieID, &entry.Name, &entry.Year, &rating, &posterURL, &entry.ViewedAt,
		); err != nil {
			return nil, fmt.Errorf("Recent: %w", err)
		}
		if rating.Valid {
			value := rating.Float64
			entry.Rating = &value
		}
		if posterURL.Valid {
			value := posterURL.String
			entry.PosterURL = &value
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (repo *HistoryRepo) Clear(ctx context.Context, userID string) error {
	defer observe("history_clear")()

	const query = `DELETE FROM history WHERE user_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("Clear: %w", err)
	}
	return nil
}

func (repo *HistoryRepo) DeleteIdle(ctx context.Context, cutoff time.Time) (int64, error) {
	defer observe("history_delete_idle")()

	const query = `DELETE FROM history WHERE viewed_at < $1`
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
