// Package cache is a best-effort on-disk snapshot store: one blob per key,
// written whole after every successful fetch and read back only when a
// fetch fails. Concurrent writers are not coordinated; snapshots are
// idempotent, so last-writer-wins is acceptable.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store keeps snapshots as files under a single directory.
type Store struct {
	dir string
}

// NewStore creates the snapshot directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put replaces the snapshot for key.
func (s *Store) Put(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o644)
}

// Get returns the last snapshot for key, or ok=false when none exists.
func (s *Store) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
