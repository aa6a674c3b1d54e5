package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"
	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver expands source targets into a deduplicated, sorted list of
// absolute file paths. A target may be an existing file, a directory
// (resolved recursively), a glob pattern, or a dotted module path
// ("pkg.mod" resolving to "pkg/mod<suffix>").
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// Resolve expands the spec's targets relative to root, applying the spec's
// exclude patterns. Targets that match nothing are skipped silently; the
// caller decides whether an empty result is an error.
func (r *Resolver) Resolve(root string, spec domain.SourceSpec) ([]string, error) {
	suffix := spec.SourceSuffix()
	seen := make(map[string]bool)
	var files []string

	collect := func(path, matchRoot string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
		}
		if seen[abs] {
			return nil
		}
		if spec.ExcludeInit && filepath.Base(abs) == "__init__"+suffix {
			return nil
		}
		if excluded(abs, matchRoot, spec.Exclude) {
			return nil
		}
		seen[abs] = true
		files = append(files, abs)
		return nil
	}

	for _, target := range spec.Targets {
		if err := r.resolveTarget(root, target, suffix, collect); err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

type collectFn func(path, matchRoot string) error

// resolveTarget expands a single target into source files.
func (r *Resolver) resolveTarget(root, target, suffix string, collect collectFn) error {
	if strings.ContainsAny(target, "*?[") {
		matches, err := filepath.Glob(filepath.Join(root, target))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "bad glob pattern"), "pattern", target)
		}
		for _, match := range matches {
			if err := r.resolvePath(match, suffix, collect); err != nil {
				return err
			}
		}
		return nil
	}

	path := filepath.Join(root, target)
	if _, err := os.Stat(path); err == nil {
		return r.resolvePath(path, suffix, collect)
	}

	// Fall back to dotted module notation: pkg.mod -> pkg/mod<suffix>.
	dotted := filepath.Join(root, strings.ReplaceAll(target, ".", string(os.PathSeparator))+suffix)
	if _, err := os.Stat(dotted); err == nil {
		return r.resolvePath(dotted, suffix, collect)
	}

	return nil
}

// resolvePath collects a single file or every matching file under a directory.
func (r *Resolver) resolvePath(path, suffix string, collect collectFn) error {
	info, err := os.Stat(path)
	if err != nil {
		// Tolerate races between glob expansion and stat.
		return nil //nolint:nilerr // vanished paths are skipped, not reported
	}

	if !info.IsDir() {
		if strings.HasSuffix(path, suffix) {
			return collect(path, filepath.Dir(path))
		}
		return nil
	}

	for file := range r.walker.WalkFiles(path, nil) {
		if !strings.HasSuffix(file, suffix) {
			continue
		}
		if err := collect(file, path); err != nil {
			return err
		}
	}
	return nil
}

// excluded matches the path's base name, slash path, and root-relative path
// against the exclude patterns.
func excluded(path, matchRoot string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	candidates := []string{filepath.Base(path), filepath.ToSlash(path)}
	if matchRoot != "" {
		if rel, err := filepath.Rel(matchRoot, path); err == nil {
			candidates = append(candidates, filepath.ToSlash(rel))
		}
	}

	for _, pattern := range patterns {
		for _, candidate := range candidates {
			if matched, _ := filepath.Match(pattern, candidate); matched {
				return true
			}
		}
	}
	return false
}

// NamePatterns normalizes bare file names into exclude patterns. Exclusion
// already matches the base name of every candidate, so a plain name pattern
// matches that file anywhere in the tree.
func NamePatterns(names []string) []string {
	patterns := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		patterns = append(patterns, filepath.Base(name))
	}
	return patterns
}
