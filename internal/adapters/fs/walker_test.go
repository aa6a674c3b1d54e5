package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.whl.build/whl/internal/adapters/fs"
)

func TestWalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.py", "pkg/b.py", ".git/config", ".hg/store", "node_modules/c.py")

	var files []string
	for path := range fs.NewWalker().WalkFiles(root, []string{"node_modules"}) {
		files = append(files, path)
	}

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.py"),
		filepath.Join(root, "pkg", "b.py"),
	}, files)
}

func TestWalkFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.py", "b.py", "c.py")

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestWalkFiles_IgnoredFileNames(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "mod.py", "mod.pyc")

	var files []string
	for path := range fs.NewWalker().WalkFiles(root, []string{"*.pyc"}) {
		files = append(files, path)
	}

	assert.Equal(t, []string{filepath.Join(root, "mod.py")}, files)
}
