package iostore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/gnames/cbstats/pkg/store"
	_ "modernc.org/sqlite"
)

const blobsDDL = `
CREATE TABLE IF NOT EXISTS blobs (
	path TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

type sqliteStore struct {
	db *sql.DB
}

// NewSQLite creates a store that keeps blobs in the "blobs" table of an
// SQLite database at path. The file is created if it does not exist.
func NewSQLite(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		return nil, OpenError("sqlite", path, os.ErrInvalid)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, OpenError("sqlite", path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError("sqlite", path, err)
	}
	// SQLite allows only one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, blobsDDL); err != nil {
		db.Close()
		return nil, OpenError("sqlite", path, err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Put(ctx context.Context, key string, data []byte) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	q := `
INSERT INTO blobs (path, data, updated_at) VALUES (?, ?, datetime('now'))
ON CONFLICT(path) DO UPDATE SET
	data = excluded.data, updated_at = excluded.updated_at`
	if _, err = s.db.ExecContext(ctx, q, k, data); err != nil {
		return WriteError(key, err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	var res []byte
	err = s.db.QueryRowContext(ctx,
		"SELECT data FROM blobs WHERE path = ?", k).Scan(&res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError(key)
	}
	if err != nil {
		return nil, ReadError(key, err)
	}
	return res, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
