// Package storage persists the gig collection to a single durable
// slot: one JSON array in gigs.json under the data directory.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/model"
)

const (
	// dataFile is the name of the durable slot within the data dir.
	dataFile = "gigs.json"
	// corruptSuffix is appended when an unreadable slot is moved aside.
	corruptSuffix = ".corrupt"
	// dirEnv overrides the default data directory.
	dirEnv = "GIGBOOK_DIR"
)

// DefaultDir returns the data directory: $GIGBOOK_DIR if set,
// otherwise ~/.gigbook.
func DefaultDir() (string, error) {
	if dir := os.Getenv(dirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".gigbook"), nil
}

// Store owns the authoritative in-memory gig collection and keeps the
// durable slot in sync. Every mutation goes through Set, which folds
// the persist step in so state is never updated without a write.
type Store struct {
	dir  string
	gigs []model.Gig
	warn io.Writer
}

// Open loads the durable slot under dir and returns a Store holding
// the collection. A missing, unreadable, or non-array slot is a
// recoverable empty state, never an error; an unreadable file is
// moved aside first so it can be recovered by hand.
func Open(dir string) *Store {
	s := &Store{dir: dir, warn: os.Stderr}
	s.gigs = s.load()
	return s
}

// SetWarnWriter redirects degraded-persistence warnings, for tests.
func (s *Store) SetWarnWriter(w io.Writer) {
	s.warn = w
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// SlotPath returns the path of the durable slot file.
func (s *Store) SlotPath() string {
	return filepath.Join(s.dir, dataFile)
}

// load reads the durable slot. Does not sort.
func (s *Store) load() []model.Gig {
	path := s.SlotPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var gigs []model.Gig
	if err := json.Unmarshal(data, &gigs); err != nil {
		backup := path + corruptSuffix
		if renameErr := os.Rename(path, backup); renameErr == nil {
			cli.Warn(s.warn, "%s is not a valid gig list, moved to %s", dataFile, backup)
		} else {
			cli.Warn(s.warn, "%s is not a valid gig list, starting empty", dataFile)
		}
		return nil
	}
	return gigs
}

// Gigs returns a copy of the authoritative collection. Callers never
// receive aliases into the store's own state.
func (s *Store) Gigs() []model.Gig {
	return model.CloneGigs(s.gigs)
}

// Len returns the number of gigs in the collection.
func (s *Store) Len() int {
	return len(s.gigs)
}

// Set replaces the authoritative collection and persists it. A failed
// write degrades to a warning: the in-memory collection is updated
// either way, so in-session work is never lost to a storage problem.
func (s *Store) Set(gigs []model.Gig) {
	s.gigs = model.CloneGigs(gigs)
	if err := s.Persist(s.gigs); err != nil {
		cli.Warn(s.warn, "%v (changes kept for this session only)", err)
	}
}

// Persist overwrites the durable slot with the full collection. The
// write is atomic from the caller's perspective: data goes to a temp
// file first and replaces the slot in a single rename, so a partial
// write is never observable.
func (s *Store) Persist(gigs []model.Gig) error {
	path := s.SlotPath()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return &cli.StorageWriteError{Path: path, Err: err}
	}

	if gigs == nil {
		gigs = []model.Gig{}
	}
	data, err := json.MarshalIndent(gigs, "", "  ")
	if err != nil {
		return &cli.StorageWriteError{Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &cli.StorageWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &cli.StorageWriteError{Path: path, Err: err}
	}
	return nil
}
