package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.whl.build/whl/internal/adapters/fs"
)

func TestStage_CopiesPackageTrees(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, "pkg/__init__.py", "pkg/sub/mod.py", "other/mod.py")
	target := filepath.Join(t.TempDir(), "workspace")

	mapping, err := fs.NewStager(fs.NewWalker()).Stage(base, []string{"pkg"}, target)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pkg": filepath.Join(target, "pkg")}, mapping)
	assert.FileExists(t, filepath.Join(target, "pkg", "__init__.py"))
	assert.FileExists(t, filepath.Join(target, "pkg", "sub", "mod.py"))
	assert.NoDirExists(t, filepath.Join(target, "other"))
}

func TestStage_DottedSubpackage(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, "pkg/sub/mod.py", "pkg/top.py")
	target := filepath.Join(t.TempDir(), "workspace")

	mapping, err := fs.NewStager(fs.NewWalker()).Stage(base, []string{"pkg.sub"}, target)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pkg": filepath.Join(target, "pkg")}, mapping)
	assert.FileExists(t, filepath.Join(target, "pkg", "sub", "mod.py"))
	assert.NoFileExists(t, filepath.Join(target, "pkg", "top.py"))
}

func TestStage_ResetsTarget(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, "pkg/mod.py")
	target := filepath.Join(t.TempDir(), "workspace")
	writeFiles(t, target, "stale.txt")

	_, err := fs.NewStager(fs.NewWalker()).Stage(base, []string{"pkg"}, target)

	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(target, "stale.txt"))
	assert.FileExists(t, filepath.Join(target, "pkg", "mod.py"))
}

func TestStage_MissingPackageSkipped(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, "pkg/mod.py")
	target := filepath.Join(t.TempDir(), "workspace")

	mapping, err := fs.NewStager(fs.NewWalker()).Stage(base, []string{"pkg", "ghost"}, target)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pkg": filepath.Join(target, "pkg")}, mapping)
}

func TestStage_PreservesFileMode(t *testing.T) {
	base := t.TempDir()
	script := filepath.Join(base, "pkg", "run.py")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o750))
	require.NoError(t, os.WriteFile(script, []byte("pass"), 0o700))
	target := filepath.Join(t.TempDir(), "workspace")

	_, err := fs.NewStager(fs.NewWalker()).Stage(base, []string{"pkg"}, target)

	require.NoError(t, err)
	info, err := os.Stat(filepath.Join(target, "pkg", "run.py"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}
