package db

import (
	"database/sql"
)

// MigrateUp creates the session and history tables. Sessions are one row per
// user; history rows carry a serial id so append order survives identical
// viewed_at timestamps.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS sessions (
    user_id      TEXT PRIMARY KEY,
    genre        TEXT NOT NULL,
    page         INTEGER NOT NULL,
    start_index  INTEGER NOT NULL,
    total_movies INTEGER NOT NULL DEFAULT 0,
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS history (
    id         SERIAL PRIMARY KEY,
    user_id    TEXT NOT NULL,
    movie_id   TEXT NOT NULL,
    name       TEXT NOT NULL,
    year       INTEGER NOT NULL,
    rating     DOUBLE PRECISION,
    poster_url TEXT,
    viewed_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Per-user window scans (Recent, cap trim) walk id within user_id.
		`CREATE INDEX IF NOT EXISTS idx_history_user_id ON history(user_id, id DESC)`,
		// Expiry sweeps filter on timestamps.
		`CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_history_viewed_at ON history(viewed_at)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown rolls back the schema.
// Use with caution: this deletes all session and history data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_history_viewed_at`,
		`DROP INDEX IF EXISTS idx_sessions_updated_at`,
		`DROP INDEX IF EXISTS idx_history_user_id`,
		`DROP TABLE IF EXISTS history`,
		`DROP TABLE IF EXISTS sessions`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
