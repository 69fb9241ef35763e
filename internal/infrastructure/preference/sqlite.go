package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/alexisbeaulieu97/tint/internal/ports"
	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

const sqliteBackend = "sqlite"

const schema = `CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const upsert = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SQLiteStore keeps preferences in a SQLite database.
type SQLiteStore struct {
	db      *sql.DB
	timeout time.Duration
	now     func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return openSQLite(path)
}

// OpenInMemory opens a private in-memory database.
func OpenInMemory() (*SQLiteStore, error) {
	return openSQLite(":memory:")
}

func openSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db, timeout: 5 * time.Second, now: time.Now}

	ctx, cancel := store.context()
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}
	return store, nil
}

// Load returns the value stored under key.
func (s *SQLiteStore) Load(key string) (string, bool, error) {
	ctx, cancel := s.context()
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, tinterrors.NewStoreError(sqliteBackend, "load", key, err)
	}
	return value, true, nil
}

// Save upserts value under key.
func (s *SQLiteStore) Save(key, value string) error {
	ctx, cancel := s.context()
	defer cancel()

	updated := s.now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, upsert, key, value, updated); err != nil {
		return tinterrors.NewStoreError(sqliteBackend, "save", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last saved.
func (s *SQLiteStore) UpdatedAt(key string) (time.Time, bool, error) {
	ctx, cancel := s.context()
	defer cancel()

	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT updated_at FROM preferences WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, tinterrors.NewStoreError(sqliteBackend, "load", key, err)
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, tinterrors.NewStoreError(sqliteBackend, "load", key, err)
	}
	return ts, true, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

var _ ports.PreferenceStore = (*SQLiteStore)(nil)
