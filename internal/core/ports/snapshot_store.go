// Package ports defines the core interfaces for the application.
package ports

import "go.whl.build/whl/internal/core/domain"

// SnapshotStore persists the change-detection snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_store.go -destination=mocks/mock_snapshot_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the persisted snapshot. An absent cache file yields an
	// empty snapshot and no error. A cache file that exists but cannot be
	// parsed yields an error wrapping domain.ErrCacheCorrupt.
	Load() (domain.Snapshot, error)

	// Save atomically overwrites the persisted snapshot in full. A reader
	// must never observe a half-written cache. Failures wrap
	// domain.ErrCachePersist.
	Save(snap domain.Snapshot) error
}

// SnapshotStoreFactory opens a store for a concrete cache file location.
// The location comes from project configuration, which is only known at
// run time.
type SnapshotStoreFactory interface {
	// Open returns a store backed by the file at the given path.
	Open(path string) SnapshotStore
}
