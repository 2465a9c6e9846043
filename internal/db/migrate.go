package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// SchemaVersion is the version this build reads and writes. Opening a
// database written by a newer build fails with ErrSchemaMismatch rather
// than risking silent corruption.
const SchemaVersion = 1

// ErrSchemaMismatch indicates the on-disk schema is newer than this
// build understands and no migration applies.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Migrate runs all schema migrations and stamps the schema version.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_meta (
		id      INTEGER PRIMARY KEY CHECK(id = 1),
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating schema_meta: %w", err)
	}

	var stored int
	err := db.QueryRow(`SELECT version FROM schema_meta WHERE id = 1`).Scan(&stored)
	switch {
	case err == sql.ErrNoRows:
		// Fresh database; stamped after migrations run.
	case err != nil:
		return fmt.Errorf("reading schema version: %w", err)
	case stored > SchemaVersion:
		return fmt.Errorf("database is schema v%d, this build supports v%d: %w",
			stored, SchemaVersion, ErrSchemaMismatch)
	}

	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	if _, err := db.Exec(`INSERT INTO schema_meta (id, version) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET version = excluded.version`, SchemaVersion); err != nil {
		return fmt.Errorf("stamping schema version: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		timestamp  TEXT NOT NULL,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('exercise_completed','mistake_recorded','vocabulary_reviewed',
		                          'session_ended','achievement_granted','streak_updated')),
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_user_time ON events(user_id, timestamp DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_events_user_kind ON events(user_id, kind)`,

	`CREATE TABLE IF NOT EXISTS streak_states (
		user_id               TEXT PRIMARY KEY,
		current_streak        INTEGER NOT NULL DEFAULT 0,
		longest_streak        INTEGER NOT NULL DEFAULT 0,
		last_activity_date    TEXT,
		freeze_days_available INTEGER NOT NULL DEFAULT 0,
		freeze_days_used      INTEGER NOT NULL DEFAULT 0,
		freeze_reset_month    TEXT NOT NULL DEFAULT '',
		total_practice_days   INTEGER NOT NULL DEFAULT 0,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS achievement_grants (
		user_id         TEXT NOT NULL,
		achievement_key TEXT NOT NULL,
		granted_at      TEXT NOT NULL,
		PRIMARY KEY (user_id, achievement_key)
	)`,

	`CREATE TABLE IF NOT EXISTS dismissals (
		user_id      TEXT NOT NULL,
		kind         TEXT NOT NULL,
		dismissed_at TEXT NOT NULL,
		PRIMARY KEY (user_id, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS vocabulary_mastery (
		user_id         TEXT NOT NULL,
		word            TEXT NOT NULL,
		mastery_level   INTEGER NOT NULL DEFAULT 0,
		last_reviewed   TEXT NOT NULL,
		next_review_due TEXT,
		first_learned   TEXT NOT NULL,
		PRIMARY KEY (user_id, word)
	)`,

	`CREATE TABLE IF NOT EXISTS skill_scores (
		user_id    TEXT PRIMARY KEY,
		vocabulary INTEGER NOT NULL DEFAULT 0,
		grammar    INTEGER NOT NULL DEFAULT 0,
		speaking   INTEGER NOT NULL DEFAULT 0,
		writing    INTEGER NOT NULL DEFAULT 0,
		listening  INTEGER NOT NULL DEFAULT 0,
		reading    INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	)`,
}
