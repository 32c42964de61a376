package options

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var _ ports.OptionStore = (*SQLiteStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS options (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteStore keeps options as JSON values in a SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the option database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsOpenFailed.Error()), "path", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsOpenFailed.Error()), "path", path)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsOpenFailed.Error()), "path", path)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsOpenFailed.Error()), "path", path)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetString returns the string stored under key.
func (s *SQLiteStore) GetString(ctx context.Context, key string) (string, error) {
	raw, err := s.get(ctx, key)
	if err != nil || raw == nil {
		return "", err
	}
	v, _ := decodeString(raw)
	return v, nil
}

// SetString stores a string value.
func (s *SQLiteStore) SetString(ctx context.Context, key, value string) error {
	return s.put(ctx, key, value)
}

// GetStrings returns the list stored under key.
func (s *SQLiteStore) GetStrings(ctx context.Context, key string) ([]string, error) {
	raw, err := s.get(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	list, _ := decodeStrings(raw)
	return list, nil
}

// SetStrings stores a list value.
func (s *SQLiteStore) SetStrings(ctx context.Context, key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	return s.put(ctx, key, values)
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM options WHERE name = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsReadFailed.Error()), "key", key)
	}
	return []byte(value), nil
}

func (s *SQLiteStore) put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOptionsWriteFailed.Error()), "key", key)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO options (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOptionsWriteFailed.Error()), "key", key)
	}
	return nil
}
