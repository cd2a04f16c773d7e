// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/codedash/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	// ProfileKey is the fixed key the profile record is stored under.
	ProfileKey = "profile"
	// LastSessionKey holds the summary of the most recent session.
	LastSessionKey = "last-session"
)

// Store wraps SQLite access for the local profile and session records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the raw value for key. ok is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Format(time.RFC3339Nano),
	)
	return err
}

// Delete removes key if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// LoadProfile returns the saved profile, or nil when none has been saved.
// A record that does not decode is treated as absent.
func (s *Store) LoadProfile(ctx context.Context) (*model.Profile, error) {
	raw, ok, err := s.Get(ctx, ProfileKey)
	if err != nil || !ok {
		return nil, err
	}
	var p model.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

// SaveProfile stores p as JSON under ProfileKey.
func (s *Store) SaveProfile(ctx context.Context, p model.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.Put(ctx, ProfileKey, string(data))
}

// ClearProfile removes the saved profile.
func (s *Store) ClearProfile(ctx context.Context) error {
	return s.Delete(ctx, ProfileKey)
}

// SaveLastSession replaces the stored session summary.
func (s *Store) SaveLastSession(ctx context.Context, sum model.SessionSummary) error {
	data, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	return s.Put(ctx, LastSessionKey, string(data))
}

// LoadLastSession returns the stored session summary, or nil when there is none.
func (s *Store) LoadLastSession(ctx context.Context) (*model.SessionSummary, error) {
	raw, ok, err := s.Get(ctx, LastSessionKey)
	if err != nil || !ok {
		return nil, err
	}
	var sum model.SessionSummary
	if err := json.Unmarshal([]byte(raw), &sum); err != nil {
		return nil, nil
	}
	return &sum, nil
}
