package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "soul_ledger: permanent record of blessings and judgments",
		SQL: `
CREATE TABLE soul_ledger (
    id          TEXT PRIMARY KEY,
    session_id  TEXT NOT NULL CHECK (length(session_id) <= 100),
    persona     TEXT NOT NULL CHECK (length(persona) <= 50),
    petition    TEXT CHECK (petition IS NULL OR length(petition) <= 1000),
    response    TEXT NOT NULL CHECK (length(response) <= 2000),
    outcome     TEXT NOT NULL CHECK (length(outcome) <= 50),
    intensity   REAL NOT NULL,
    bestowed_at INTEGER NOT NULL
);

CREATE INDEX idx_ledger_session ON soul_ledger(session_id);
CREATE INDEX idx_ledger_persona ON soul_ledger(persona);
CREATE INDEX idx_ledger_bestowed ON soul_ledger(bestowed_at DESC);
`,
	},
}

func (db *DB) migrate() error {
	// Create schema_versions table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
