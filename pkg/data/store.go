package data

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the persisted key-value store behind unlock state and
// preferences. Writes are last-writer-wins; callers must not assume any
// transaction across keys.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

const createKVTable = `CREATE TABLE IF NOT EXISTS kv_store (
	item_key   TEXT PRIMARY KEY,
	item_value TEXT NOT NULL
)`

// SQLStore keeps the key-value pairs in a single table. It works with any
// database/sql driver that understands ON CONFLICT upserts (DuckDB, SQLite).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT item_value FROM kv_store WHERE item_key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv_store (item_key, item_value) VALUES (?, ?)
		ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// openSQL opens a file-backed database, creating the parent directory and
// the key-value table.
func openSQL(driver, path string) (*sql.DB, error) {
	if path != "" && path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if _, err := db.Exec(createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return db, nil
}
