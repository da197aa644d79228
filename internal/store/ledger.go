package store

import (
	"database/sql"
	"fmt"
	"time"
)

// LedgerEntry is one permanent record in the soul ledger. Entries are never
// updated or deleted.
type LedgerEntry struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Persona    string    `json:"persona"`
	Petition   string    `json:"petition,omitempty"`
	Response   string    `json:"response"`
	Outcome    string    `json:"outcome"`
	Intensity  float64   `json:"intensity"`
	BestowedAt time.Time `json:"bestowed_at"`
}

// Append records a ledger entry. Idempotent by id: re-appending an entry
// that already exists is a no-op, so a retried write cannot duplicate it.
func (db *DB) Append(e LedgerEntry) error {
	var petition any
	if e.Petition != "" {
		petition = e.Petition
	}

	_, err := db.Exec(`
		INSERT OR IGNORE INTO soul_ledger (id, session_id, persona, petition, response, outcome, intensity, bestowed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.SessionID, e.Persona, petition, e.Response, e.Outcome, e.Intensity, e.BestowedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// GetBySession returns all entries for a session, newest first.
func (db *DB) GetBySession(sessionID string) ([]LedgerEntry, error) {
	rows, err := db.Query(`
		SELECT id, session_id, persona, petition, response, outcome, intensity, bestowed_at
		FROM soul_ledger WHERE session_id = ? ORDER BY bestowed_at DESC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session ledger: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// GetByPersona returns the most recent entries for a persona across all
// sessions.
func (db *DB) GetByPersona(persona string, limit int) ([]LedgerEntry, error) {
	rows, err := db.Query(`
		SELECT id, session_id, persona, petition, response, outcome, intensity, bestowed_at
		FROM soul_ledger WHERE persona = ? ORDER BY bestowed_at DESC LIMIT ?
	`, persona, limit)
	if err != nil {
		return nil, fmt.Errorf("get persona ledger: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// CountBySession returns the number of ledger entries for a session.
func (db *DB) CountBySession(sessionID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM soul_ledger WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ledger entries: %w", err)
	}
	return count, nil
}

func scanEntries(rows *sql.Rows) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		var petition sql.NullString
		var bestowed int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Persona, &petition, &e.Response, &e.Outcome, &e.Intensity, &bestowed); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Petition = petition.String
		e.BestowedAt = time.UnixMilli(bestowed).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
