package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list is re-run on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_shorthand (
		user_id        TEXT PRIMARY KEY,
		shorthand_text TEXT NOT NULL DEFAULT '',
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_main_notes (
		user_id    TEXT PRIMARY KEY,
		notes_text TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,

	// prompt_override is nullable on purpose: NULL means "use the built-in
	// template" while an empty string is an explicitly blank override.
	`CREATE TABLE IF NOT EXISTS user_settings (
		user_id              TEXT PRIMARY KEY,
		historical_data_days INTEGER NOT NULL DEFAULT 30,
		prompt_override      TEXT,
		updated_at           TEXT NOT NULL
	)`,

	// fingerprint is the content hash over an entry's identifying fields;
	// the (user_id, fingerprint) unique index is the dedup guarantee for
	// repeated imports.
	`CREATE TABLE IF NOT EXISTS user_historical_entries (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     TEXT NOT NULL,
		client_id   TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL,
		project     TEXT NOT NULL DEFAULT '',
		activity    TEXT NOT NULL DEFAULT '',
		work_item   TEXT NOT NULL DEFAULT '',
		hours       REAL NOT NULL DEFAULT 0,
		comment     TEXT NOT NULL DEFAULT '',
		fingerprint TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_historical_user_fingerprint
		ON user_historical_entries(user_id, fingerprint)`,
	`CREATE INDEX IF NOT EXISTS idx_historical_user_date
		ON user_historical_entries(user_id, date)`,

	`CREATE TABLE IF NOT EXISTS user_proposed_entries (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id          TEXT NOT NULL,
		client_id        TEXT NOT NULL,
		date             TEXT NOT NULL,
		project          TEXT NOT NULL DEFAULT '',
		activity         TEXT NOT NULL DEFAULT '',
		work_item        TEXT NOT NULL DEFAULT '',
		hours            REAL NOT NULL DEFAULT 0,
		comment          TEXT NOT NULL DEFAULT '',
		submission_error TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_proposed_user_client
		ON user_proposed_entries(user_id, client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_proposed_user
		ON user_proposed_entries(user_id)`,
}
