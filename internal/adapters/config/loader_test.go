package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.whl.build/whl/internal/adapters/config"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "whl.yaml"), []byte(content), 0o600))
}

func TestLoad_Full(t *testing.T) {
	content := `
version: "1"
compiler:
  cmd: ["cythonize", "-3", "{file}"]
  workers: 4
sources:
  targets: ["pkg", "tools/*.py"]
  exclude: ["*_draft.py"]
  excludeInit: false
cache:
  path: .cache/whl.json
clean:
  patterns: ["*.c"]
  keep: ["pkg/_version.py"]
  buildDirs: ["build", "dist"]
workspace:
  dir: .whl_build
  packages: ["pkg.sub"]
artifacts: ["dist/*.so"]
`
	dir := t.TempDir()
	writeConfig(t, dir, content)

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, project.Root)
	assert.Equal(t, []string{"cythonize", "-3", "{file}"}, project.Compiler.Cmd)
	assert.Equal(t, 4, project.Compiler.Workers)
	assert.Equal(t, []string{"pkg", "tools/*.py"}, project.Sources.Targets)
	assert.False(t, project.Sources.ExcludeInit)
	assert.Equal(t, filepath.Join(dir, ".cache/whl.json"), project.CachePath)
	assert.Equal(t, []string{"*.c"}, project.Clean.Patterns)
	assert.Equal(t, []string{"build", "dist"}, project.Clean.BuildDirs)
	assert.Equal(t, ".whl_build", project.Workspace.Dir)
	assert.Equal(t, []string{"dist/*.so"}, project.Artifacts)
}

func TestLoad_DirectFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compiler:\n  cmd: [\"cc\"]\n"), 0o600))

	project, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, project.Root)
	assert.Equal(t, []string{"cc"}, project.Compiler.Cmd)
	assert.Equal(t, filepath.Join(dir, ".whlcache"), project.CachePath)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".whlcache"), project.CachePath)
	assert.Equal(t, 1, project.Compiler.Workers)
	assert.True(t, project.Sources.ExcludeInit)
	assert.Equal(t, []string{"*.c", "*.so", "*.pyd"}, project.Clean.Patterns)
	assert.Equal(t, []string{"build"}, project.Clean.BuildDirs)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "compiler: [not: a: mapping")

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
}

func TestLoad_WorkersClampedToOne(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "compiler:\n  cmd: [\"cc\"]\n  workers: 0\n")

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, project.Compiler.Workers)
}

func TestLoad_WorkspaceDirAddedToBuildDirs(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "workspace:\n  dir: .whl_build\n")

	project, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", ".whl_build"}, project.Clean.BuildDirs)
}
