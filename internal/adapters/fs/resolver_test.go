package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.whl.build/whl/internal/adapters/fs"
	"go.whl.build/whl/internal/core/domain"
)

func newResolver() *fs.Resolver {
	return fs.NewResolver(fs.NewWalker())
}

func writeFiles(t *testing.T, root string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("pass"), 0o600))
		paths = append(paths, path)
	}
	return paths
}

func TestResolve_Directory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "pkg/b.py", "pkg/a.py", "pkg/sub/c.py", "pkg/readme.md")

	files, err := newResolver().Resolve(root, domain.SourceSpec{Targets: []string{"pkg"}})

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "pkg", "a.py"),
		filepath.Join(root, "pkg", "b.py"),
		filepath.Join(root, "pkg", "sub", "c.py"),
	}, files)
}

func TestResolve_Glob(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.py", "b.py", "c.txt")

	files, err := newResolver().Resolve(root, domain.SourceSpec{Targets: []string{"*.py"}})

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.py"),
		filepath.Join(root, "b.py"),
	}, files)
}

func TestResolve_DottedModule(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "pkg/mod.py", "pkg/other.py")

	files, err := newResolver().Resolve(root, domain.SourceSpec{Targets: []string{"pkg.mod"}})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "pkg", "mod.py")}, files)
}

func TestResolve_SingleFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "mod.py")

	files, err := newResolver().Resolve(root, domain.SourceSpec{Targets: []string{"mod.py"}})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "mod.py")}, files)
}

func TestResolve_MissingTargetSkipped(t *testing.T) {
	root := t.TempDir()

	files, err := newResolver().Resolve(root, domain.SourceSpec{Targets: []string{"nope", "nope.mod"}})

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestResolve_ExcludeInit(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "pkg/__init__.py", "pkg/mod.py")

	files, err := newResolver().Resolve(root, domain.SourceSpec{
		Targets:     []string{"pkg"},
		ExcludeInit: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "pkg", "mod.py")}, files)

	files, err = newResolver().Resolve(root, domain.SourceSpec{Targets: []string{"pkg"}})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestResolve_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "pkg/mod.py", "pkg/skip_me.py", "pkg/sub/deep.py")

	files, err := newResolver().Resolve(root, domain.SourceSpec{
		Targets: []string{"pkg"},
		Exclude: []string{"skip_me.py", "sub/deep.py"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "pkg", "mod.py")}, files)
}

func TestResolve_DeduplicatesOverlappingTargets(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "pkg/mod.py")

	files, err := newResolver().Resolve(root, domain.SourceSpec{
		Targets: []string{"pkg", "pkg/mod.py", "pkg.mod"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "pkg", "mod.py")}, files)
}

func TestResolve_CustomSuffix(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "pkg/mod.pyx", "pkg/mod.py")

	files, err := newResolver().Resolve(root, domain.SourceSpec{
		Targets: []string{"pkg"},
		Suffix:  ".pyx",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "pkg", "mod.pyx")}, files)
}

func TestNamePatterns(t *testing.T) {
	patterns := fs.NamePatterns([]string{"mod.py", "pkg/other.py", ""})
	assert.Equal(t, []string{"mod.py", "other.py"}, patterns)
}
