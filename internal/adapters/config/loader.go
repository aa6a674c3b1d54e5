// Package config provides the project configuration loader for whl.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project configuration file looked up in the
// working directory.
const DefaultFilename = "whl.yaml"

// Default cleanup targets: generated C sources and compiled extensions.
var defaultCleanPatterns = []string{"*.c", "*.so", "*.pyd"}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default configuration filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given path. The path is either a
// working directory, in which case the default filename inside it is used,
// or a direct path to a configuration file. A missing file yields a project
// with defaults; a present but invalid file is an error. Configuration is
// fully explicit, the process environment is never consulted.
func (l *FileConfigLoader) Load(path string) (*domain.Project, error) {
	cwd := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		cwd = filepath.Dir(path)
	} else {
		filename := l.Filename
		if filename == "" {
			filename = DefaultFilename
		}
		path = filepath.Join(cwd, filename)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return resolve(cwd, &Projectfile{}), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var pf Projectfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return resolve(cwd, &pf), nil
}

// resolve turns the raw file structure into a fully defaulted project.
func resolve(cwd string, pf *Projectfile) *domain.Project {
	cachePath := pf.Cache.Path
	if cachePath == "" {
		cachePath = domain.DefaultCachePath
	}
	if !filepath.IsAbs(cachePath) {
		cachePath = filepath.Join(cwd, cachePath)
	}

	workers := pf.Compiler.Workers
	if workers < 1 {
		workers = 1
	}

	excludeInit := true
	if pf.Sources.ExcludeInit != nil {
		excludeInit = *pf.Sources.ExcludeInit
	}

	patterns := pf.Clean.Patterns
	if len(patterns) == 0 {
		patterns = defaultCleanPatterns
	}

	buildDirs := pf.Clean.BuildDirs
	if len(buildDirs) == 0 {
		buildDirs = []string{"build"}
		if pf.Workspace.Dir != "" {
			buildDirs = append(buildDirs, pf.Workspace.Dir)
		}
	}

	return &domain.Project{
		Root:      cwd,
		CachePath: cachePath,
		Compiler: domain.CompilerSpec{
			Cmd:     pf.Compiler.Cmd,
			Workers: workers,
		},
		Sources: domain.SourceSpec{
			Targets:     pf.Sources.Targets,
			Exclude:     pf.Sources.Exclude,
			Suffix:      pf.Sources.Suffix,
			ExcludeInit: excludeInit,
		},
		Clean: domain.CleanSpec{
			Patterns:  patterns,
			Keep:      pf.Clean.Keep,
			BuildDirs: buildDirs,
		},
		Workspace: domain.WorkspaceSpec{
			Dir:      pf.Workspace.Dir,
			Packages: pf.Workspace.Packages,
		},
		Artifacts: pf.Artifacts,
	}
}
