// Package changeset implements mtime-based change detection over a
// persisted snapshot.
package changeset

import (
	"errors"
	"os"

	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
)

// Detector determines which candidate files changed since the last recorded
// pass and keeps the persisted snapshot in sync.
//
// A pass is single-threaded and synchronous: the snapshot is read once at
// the start and written once at the end. Only the write itself is atomic;
// concurrent passes against the same cache file require external locking.
type Detector struct {
	store  ports.SnapshotStore
	logger ports.Logger
}

// NewDetector creates a Detector over the given snapshot store.
func NewDetector(store ports.SnapshotStore, logger ports.Logger) *Detector {
	return &Detector{
		store:  store,
		logger: logger,
	}
}

// DetectChanges returns the subset of files that are new or whose
// modification timestamp differs from the persisted snapshot, preserving
// input order. Non-existent files are skipped entirely: they contribute
// neither to the change set nor to the new snapshot.
//
// The staged snapshot is saved unconditionally, replacing the previous one
// in full, so files no longer offered drop out of the record. If the save
// fails, the returned change set is still valid and the error wraps
// domain.ErrCachePersist; the next pass simply re-detects against the old
// baseline.
func (d *Detector) DetectChanges(files []string) ([]string, error) {
	prev, err := d.store.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrCacheCorrupt) {
			return nil, err
		}
		// Recovery policy: an unparsable cache is equivalent to an empty one.
		d.logger.Warn("snapshot cache is unreadable, treating as empty")
		prev = domain.Snapshot{}
	}

	next, existing := stage(files)

	changed := make([]string, 0, len(existing))
	for _, path := range existing {
		if prev.Changed(path, next[path]) {
			changed = append(changed, path)
		}
	}

	if err := d.store.Save(next); err != nil {
		return changed, err
	}
	return changed, nil
}

// ChangedOrAll returns every existing candidate when force is set, or
// delegates to DetectChanges otherwise. A forced pass still replaces the
// persisted snapshot so a subsequent incremental pass has a consistent
// baseline.
func (d *Detector) ChangedOrAll(files []string, force bool) ([]string, error) {
	if !force {
		return d.DetectChanges(files)
	}

	next, existing := stage(files)
	if err := d.store.Save(next); err != nil {
		return existing, err
	}
	return existing, nil
}

// stage builds the new snapshot fully in memory before anything is written,
// returning it together with the still-existing candidates in input order.
func stage(files []string) (domain.Snapshot, []string) {
	next := make(domain.Snapshot, len(files))
	existing := make([]string, 0, len(files))

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			// A candidate that vanished between enumeration and stat is
			// tolerated, not an error.
			continue
		}
		if info.IsDir() {
			continue
		}
		next[path] = domain.ModSeconds(info.ModTime())
		existing = append(existing, path)
	}

	return next, existing
}
