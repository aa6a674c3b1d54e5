package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"go.whl.build/whl/internal/core/ports"
)

var _ ports.WorkspaceStager = (*Stager)(nil)

// Stager copies package trees into a clean temporary build workspace, so
// packaging can run against a directory that contains nothing but the
// sources meant to ship.
type Stager struct {
	walker *Walker
}

// NewStager creates a new Stager.
func NewStager(walker *Walker) *Stager {
	return &Stager{walker: walker}
}

// Stage recreates target and copies each dotted package's directory tree
// from base into it, preserving the relative layout. Packages whose
// directories do not exist are skipped. Returns a mapping from top-level
// package name to its staged directory, suitable for package-dir wiring.
func (s *Stager) Stage(base string, packages []string, target string) (map[string]string, error) {
	if err := os.RemoveAll(target); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to reset workspace"), "path", target)
	}
	if err := os.MkdirAll(target, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create workspace"), "path", target)
	}

	mapping := make(map[string]string)
	for _, pkg := range packages {
		rel := strings.ReplaceAll(pkg, ".", string(os.PathSeparator))
		src := filepath.Join(base, rel)
		if info, err := os.Stat(src); err != nil || !info.IsDir() {
			continue
		}

		dst := filepath.Join(target, rel)
		if err := s.copyTree(src, dst); err != nil {
			return nil, err
		}

		top := strings.SplitN(pkg, ".", 2)[0]
		if _, ok := mapping[top]; !ok {
			mapping[top] = filepath.Join(target, top)
		}
	}

	return mapping, nil
}

// copyTree copies the directory tree at src to dst.
func (s *Stager) copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk source tree"), "path", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.Wrap(err, "failed to relativize path")
		}
		out := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(out, 0o750); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", out)
			}
			return nil
		}
		return copyFile(path, out)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from a tree walk rooted at the project
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Destination is inside the workspace
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create staged file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to flush staged file"), "path", dst)
	}
	return nil
}
