// Package store provides the SQLite-backed per-day ledger store.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fitfuel/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Ledger persists one row per calendar day, keyed YYYY-MM-DD. The entry
// sequence is stored as a single JSON document so a save is always a full
// overwrite of that day's record — no implicit merging.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Load returns the persisted entry sequence for a day. A missing day is a
// valid state, not an error: it yields an empty sequence. A record that no
// longer parses also yields an empty sequence — one corrupt day must not
// block the rest of the app.
func (l *Ledger) Load(day model.Day) ([]model.FoodEntry, error) {
	var doc string
	err := l.db.QueryRow("SELECT entries FROM ledger_days WHERE day = ?", string(day)).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading ledger for %s: %w", day, err)
	}

	var entries []model.FoodEntry
	if err := json.Unmarshal([]byte(doc), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// Save fully replaces the persisted record for a day with the given
// sequence. Saving the same sequence twice yields the same persisted state.
func (l *Ledger) Save(day model.Day, entries []model.FoodEntry) error {
	if entries == nil {
		entries = []model.FoodEntry{}
	}
	doc, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding ledger for %s: %w", day, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = l.db.Exec(`INSERT OR REPLACE INTO ledger_days (day, entries, saved_at)
		VALUES (?, ?, ?)`, string(day), string(doc), now)
	if err != nil {
		return fmt.Errorf("saving ledger for %s: %w", day, err)
	}
	return nil
}

// Append inserts new entries at the head of a day's sequence, keeping
// most-recent-first ordering.
func (l *Ledger) Append(day model.Day, entries []model.FoodEntry) error {
	existing, err := l.Load(day)
	if err != nil {
		return err
	}
	merged := make([]model.FoodEntry, 0, len(entries)+len(existing))
	merged = append(merged, entries...)
	merged = append(merged, existing...)
	return l.Save(day, merged)
}

// Remove deletes the entry with the matching id from a day's sequence.
// Removing an absent id is a no-op.
func (l *Ledger) Remove(day model.Day, id string) error {
	entries, err := l.Load(day)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	return l.Save(day, kept)
}

// Days returns all days with a persisted record, most recent first.
func (l *Ledger) Days() ([]model.Day, error) {
	rows, err := l.db.Query("SELECT day FROM ledger_days ORDER BY day DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var days []model.Day
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, model.Day(d))
	}
	return days, rows.Err()
}
