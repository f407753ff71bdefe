package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// migration system re-runs all of them on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Plans are stored as an opaque JSON document plus a handful of
	// denormalized columns for listing without deserializing.
	`CREATE TABLE IF NOT EXISTS plans (
		id            TEXT PRIMARY KEY,
		team_id       TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		duration_days INTEGER NOT NULL,
		plan_json     TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_team ON plans(team_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS fixtures (
		id                TEXT PRIMARY KEY,
		team_id           TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		date              TEXT NOT NULL,
		opponent          TEXT NOT NULL,
		is_home           INTEGER NOT NULL DEFAULT 0,
		competition       TEXT NOT NULL DEFAULT '',
		notes             TEXT NOT NULL DEFAULT '',
		importance_weight REAL NOT NULL DEFAULT 1.0,
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fixtures_team_date ON fixtures(team_id, date)`,
}
