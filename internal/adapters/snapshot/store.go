// Package snapshot implements the file-backed change-detection snapshot store.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store persists a domain.Snapshot as an indented JSON mapping in a single
// file, so the cache stays inspectable with any text tooling.
//
// Load and Save are individually safe, but a load-then-save pass is not
// atomic as a whole. Concurrent passes against the same cache file need
// external locking.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot. An absent file is an empty snapshot.
func (s *Store) Load() (domain.Snapshot, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Snapshot{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read snapshot cache"), "path", s.path)
	}

	snap := domain.Snapshot{}
	if len(data) == 0 {
		return snap, nil
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, err.Error()), "path", s.path)
	}

	return snap, nil
}

// Save overwrites the cache file with the given snapshot in full. The write
// goes to a temporary file in the same directory followed by a rename, so a
// reader never observes a half-written cache.
func (s *Store) Save(snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrCachePersist, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCachePersist, err.Error()), "path", s.path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCachePersist, err.Error()), "path", s.path)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrCachePersist, err.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrCachePersist, err.Error()), "path", s.path)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrCachePersist, err.Error()), "path", s.path)
	}

	return nil
}

var _ ports.SnapshotStoreFactory = (*Factory)(nil)

// Factory opens stores for cache file locations chosen at run time.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns a store backed by the file at the given path.
func (f *Factory) Open(path string) ports.SnapshotStore {
	return NewStore(path)
}
