// Package store persists serialized outline documents in a SQLite
// database so unchanged files skip re-conversion.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a cache of serialized outline documents keyed by file path
// and source content hash.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the cached document for a path and content hash, or
// found=false on a miss. A matching hash under a different path is a
// miss: the document embeds the path it was converted under.
func (s *Store) Get(filePath, contentHash string) (doc []byte, found bool, err error) {
	row := s.db.QueryRow(
		`SELECT document FROM outlines WHERE file_path = ? AND content_hash = ?`,
		filePath, contentHash,
	)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query outline cache: %w", err)
	}
	return doc, true, nil
}

// Put stores a document under its path and content hash, replacing any
// previous entry for the same pair.
func (s *Store) Put(filePath, contentHash string, doc []byte) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO outlines (file_path, content_hash, document) VALUES (?, ?, ?)`,
		filePath, contentHash, doc,
	)
	if err != nil {
		return fmt.Errorf("store outline: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
