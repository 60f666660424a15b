// Package storage opens the archive's SQLite database and keeps the
// handle alive for the process lifetime. Schema semantics beyond table
// existence belong to the front end.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"ando-archive/internal/logger"
)

type Plugin struct {
	path string
	db   *sql.DB
	log  logger.Logger
}

func New(path string, log logger.Logger) *Plugin {
	return &Plugin{path: path, log: log}
}

func (p *Plugin) Name() string { return "storage" }

func (p *Plugin) Init(ctx context.Context) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", p.path)
	if err != nil {
		return fmt.Errorf("opening archive database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("connecting to archive database: %w", err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return err
	}

	p.db = db
	p.log.Debug("Storage", "archive database ready", map[string]interface{}{
		"path": p.path,
	})
	return nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		body TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS document_categories (
		document_id INTEGER NOT NULL REFERENCES documents(id),
		category_id INTEGER NOT NULL REFERENCES categories(id),
		PRIMARY KEY (document_id, category_id)
	);

	CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at DESC);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initializing archive schema: %w", err)
	}
	return nil
}

func (p *Plugin) Shutdown() {
	if p.db == nil {
		return
	}
	if err := p.db.Close(); err != nil {
		p.log.Error("Storage", err, nil)
	}
	p.db = nil
}

// DB returns the open database handle for front-end bindings.
func (p *Plugin) DB() *sql.DB { return p.db }
