// Package fs provides filesystem adapters for resolving, cleaning, hashing
// and staging source trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping version-control metadata
// directories and any directory or file whose name matches one of the
// ignore patterns. Paths are yielded as returned by filepath.WalkDir, i.e.
// prefixed with root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip := w.skipEntry(d, ignores); skip != nil {
				return skip
			}
			if d.IsDir() {
				return nil
			}
			if ignoredName(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// skipEntry returns filepath.SkipDir for directories that must not be
// descended into, nil otherwise.
func (w *Walker) skipEntry(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}

	name := d.Name()
	if name == ".git" || name == ".jj" || name == ".hg" {
		return filepath.SkipDir
	}
	if ignoredName(name, ignores) {
		return filepath.SkipDir
	}
	return nil
}

func ignoredName(name string, ignores []string) bool {
	for _, pattern := range ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
