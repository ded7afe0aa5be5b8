package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accommodations (
		id              TEXT    PRIMARY KEY,
		name            TEXT    NOT NULL,
		slug            TEXT    NOT NULL UNIQUE,
		island          TEXT    NOT NULL DEFAULT '',
		location        TEXT    NOT NULL DEFAULT '',
		description     TEXT    NOT NULL DEFAULT '',
		image_url       TEXT    NOT NULL DEFAULT '',
		image_alt       TEXT    NOT NULL DEFAULT '',
		price_per_night REAL    NOT NULL DEFAULT 0 CHECK (price_per_night >= 0),
		rating          REAL    NOT NULL DEFAULT 1 CHECK (rating >= 1 AND rating <= 10),
		review_count    INTEGER NOT NULL DEFAULT 0 CHECK (review_count >= 0),
		stars           INTEGER NOT NULL DEFAULT 3 CHECK (stars IN (3, 4, 5)),
		type            TEXT    NOT NULL DEFAULT 'Hotel',
		facilities      TEXT    NOT NULL DEFAULT '[]',
		organization    TEXT    NOT NULL DEFAULT '',
		is_popular      INTEGER NOT NULL DEFAULT 0,
		home_page_order INTEGER CHECK (home_page_order IS NULL OR home_page_order >= 1),
		status          TEXT    NOT NULL DEFAULT 'Concept',
		created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_accommodations_status ON accommodations(status)`,
	`CREATE TABLE IF NOT EXISTS islands (
		id         TEXT    PRIMARY KEY,
		name       TEXT    NOT NULL,
		slug       TEXT    NOT NULL UNIQUE,
		is_active  INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS api_keys (
		id           INTEGER  PRIMARY KEY AUTOINCREMENT,
		name         TEXT     NOT NULL,
		key_prefix   TEXT     NOT NULL,
		key_hash     TEXT     NOT NULL UNIQUE,
		created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
		last_used_at DATETIME
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
