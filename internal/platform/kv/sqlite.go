package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	apperrors "worksync/internal/platform/errors"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w: %w", apperrors.ErrStorage, err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w: %w", apperrors.ErrStorage, err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS collections (
  name TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create collections table: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context, c Collection) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = ?`, string(c)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, ioError("read", c, err)
	}
	return []byte(payload), nil
}

func (s *SQLiteStore) Write(ctx context.Context, c Collection, payload []byte) error {
	const stmt = `
INSERT INTO collections (name, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  payload=excluded.payload,
  updated_at=excluded.updated_at;
`
	if _, err := s.db.ExecContext(ctx, stmt, string(c), string(payload), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return ioError("write", c, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, c Collection) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, string(c)); err != nil {
		return ioError("remove", c, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
