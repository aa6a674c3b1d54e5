package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
)

var _ ports.ArtifactCleaner = (*Cleaner)(nil)

// Cleaner removes generated build artifacts by pattern.
type Cleaner struct {
	walker *Walker
	logger ports.Logger
}

// NewCleaner creates a new Cleaner.
func NewCleaner(walker *Walker, logger ports.Logger) *Cleaner {
	return &Cleaner{
		walker: walker,
		logger: logger,
	}
}

// Clean removes every file under root matching one of the spec's patterns,
// unless a keep pattern matches it too. Individual removal failures are
// logged as warnings and do not abort the sweep. Build directories listed in
// the spec are removed wholesale afterwards. Returns the removed file paths.
func (c *Cleaner) Clean(root string, spec domain.CleanSpec) ([]string, error) {
	if root == "" {
		root = "."
	}

	var removed []string
	for path := range c.walker.WalkFiles(root, nil) {
		if !excluded(path, root, spec.Patterns) {
			continue
		}
		if excluded(path, root, spec.Keep) {
			continue
		}
		if err := os.Remove(path); err != nil {
			c.logger.Warn("failed to remove " + path + ": " + err.Error())
			continue
		}
		removed = append(removed, path)
	}

	for _, dir := range spec.BuildDirs {
		target := filepath.Join(root, dir)
		if err := os.RemoveAll(target); err != nil {
			return removed, zerr.With(zerr.Wrap(err, "failed to remove build directory"), "path", target)
		}
	}

	return removed, nil
}
