// Package cas implements persistent storage of per-directory decisions.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is the state file used when no path is configured.
const DefaultPath = domain.StateDir + "/state.json"

var _ ports.DecisionStore = (*Store)(nil)

// Store implements ports.DecisionStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.DecisionRecord
}

// NewStore creates a new DecisionStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.DecisionRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read decision store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal decision store"), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal decision store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for decision store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write decision store"), "path", s.path)
	}

	return nil
}

// Get retrieves the decision record for a relative directory.
func (s *Store) Get(relDir string) (*domain.DecisionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[relDir]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// PutAll stores the records and writes the file once.
func (s *Store) PutAll(records []domain.DecisionRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		s.cache[rec.RelativeDir] = rec
	}
	return s.save()
}
