package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.whl.build/whl/internal/adapters/fs"
	"go.whl.build/whl/internal/core/domain"
)

type quietLogger struct{}

func (quietLogger) Info(string) {}
func (quietLogger) Warn(string) {}
func (quietLogger) Error(error) {}

func newCleaner() *fs.Cleaner {
	return fs.NewCleaner(fs.NewWalker(), quietLogger{})
}

func TestClean_RemovesMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "mod.c", "mod.so", "pkg/other.c", "mod.py")

	removed, err := newCleaner().Clean(root, domain.CleanSpec{
		Patterns: []string{"*.c", "*.so"},
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "mod.c"),
		filepath.Join(root, "mod.so"),
		filepath.Join(root, "pkg", "other.c"),
	}, removed)
	assert.FileExists(t, filepath.Join(root, "mod.py"))
	assert.NoFileExists(t, filepath.Join(root, "mod.c"))
}

func TestClean_KeepOverridesPatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "mod.c", "keep.c")

	removed, err := newCleaner().Clean(root, domain.CleanSpec{
		Patterns: []string{"*.c"},
		Keep:     []string{"keep.c"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "mod.c")}, removed)
	assert.FileExists(t, filepath.Join(root, "keep.c"))
}

func TestClean_RemovesBuildDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "build/lib/mod.so", "mod.py")

	removed, err := newCleaner().Clean(root, domain.CleanSpec{
		BuildDirs: []string{"build", "missing"},
	})

	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.NoDirExists(t, filepath.Join(root, "build"))
}

func TestClean_SkipsVersionControlDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, ".git/objects/blob.c", "mod.c")

	removed, err := newCleaner().Clean(root, domain.CleanSpec{
		Patterns: []string{"*.c"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "mod.c")}, removed)
	assert.FileExists(t, filepath.Join(root, ".git", "objects", "blob.c"))
}
