// Package kv is the durable local medium for the client: a string-keyed
// table of JSON documents in sqlite. Reads immediately after writes in the
// same process observe the new value (sqlite gives read-your-writes).
package kv

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pocketshop/internal/errs"
)

type Store struct{ db *sqlx.DB }

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return New(db)
}

// New wraps an already-open sqlite handle.
func New(db *sqlx.DB) (*Store, error) {
	// one writer at a time; also keeps :memory: databases on a single conn
	db.SetMaxOpenConns(1)
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// Get decodes the value stored under key into out. The bool reports whether
// the key was present. A stored value that no longer parses yields a
// DeserializationError; read paths treat that the same as absent.
func (s *Store) Get(key string, out any) (bool, error) {
	var raw string
	err := s.db.Get(&raw, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, &errs.DeserializationError{Key: key, Err: err}
	}
	return true, nil
}

// Set stores v under key, replacing any previous value.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &errs.PersistenceError{Key: key, Err: err}
	}
	_, err = s.db.Exec(`
	  INSERT INTO kv(key, value, updated_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(raw))
	if err != nil {
		return &errs.PersistenceError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &errs.PersistenceError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM kv`); err != nil {
		return &errs.PersistenceError{Key: "*", Err: err}
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
