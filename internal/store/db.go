// Package store provides SQLite-backed persistence for the imported
// knowledge-graph snapshot. The database lives at .lx/graph.db; query
// commands rebuild the in-memory graph from it so the original JSON file
// is only needed at import time.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBFileName is the name of the snapshot database inside the .lx directory.
const DBFileName = "graph.db"

// Store manages the .lx/graph.db SQLite database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the snapshot database in the given .lx directory.
// It creates the directory if needed and initializes the schema when the
// database is new.
func Open(lxDir string) (*Store, error) {
	if err := os.MkdirAll(lxDir, 0755); err != nil {
		return nil, fmt.Errorf("create .lx directory: %w", err)
	}

	dbPath := filepath.Join(lxDir, DBFileName)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// DB returns the underlying database connection for advanced operations.
func (s *Store) DB() *sql.DB {
	return s.db
}
