package persist

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultLayoutKey is the row key the widget layout is stored under
const DefaultLayoutKey = "widget_layout"

// SQLite stores the payload as a row in an embedded database
type SQLite struct {
	db  *sql.DB
	key string
}

// OpenSQLite opens (or creates) the database at path and prepares the table
func OpenSQLite(path, key string) (*SQLite, error) {
	if key == "" {
		key = DefaultLayoutKey
	}

	dbDir := filepath.Dir(path)
	if err := os.MkdirAll(dbDir, DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);
	`

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLite{db: db, key: key}, nil
}

// Load returns the stored payload for the store's key
func (s *SQLite) Load() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.key, err)
	}
	return data, nil
}

// Save upserts the payload for the store's key
func (s *SQLite) Save(data []byte) error {
	upsertSQL := `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, strftime('%s', 'now'))
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
	`
	if _, err := s.db.Exec(upsertSQL, s.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.key, err)
	}
	return nil
}

// Close releases the database handle
func (s *SQLite) Close() error {
	return s.db.Close()
}
