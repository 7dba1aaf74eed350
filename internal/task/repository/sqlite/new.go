// Package sqlite implements the task repository on SQLite, sharing the
// storage engine the credential store uses.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	pkgLog "unified-calendar/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

// New opens (and if needed bootstraps) the task database at path.
func New(l pkgLog.Logger, path string) (*implRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("task store path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping task store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to bootstrap task store: %w", err)
	}
	return &implRepository{l: l, db: db}, nil
}

// Close closes the underlying database handle.
func (r *implRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
