package config

// Projectfile represents the structure of the whl.yaml configuration file.
type Projectfile struct {
	Version   string       `yaml:"version"`
	Compiler  CompilerDTO  `yaml:"compiler"`
	Sources   SourcesDTO   `yaml:"sources"`
	Cache     CacheDTO     `yaml:"cache"`
	Clean     CleanDTO     `yaml:"clean"`
	Workspace WorkspaceDTO `yaml:"workspace"`
	Artifacts []string     `yaml:"artifacts"`
}

// CompilerDTO configures the external per-file compiler command.
type CompilerDTO struct {
	Cmd     []string `yaml:"cmd"`
	Workers int      `yaml:"workers"`
}

// SourcesDTO configures source file resolution.
type SourcesDTO struct {
	Targets []string `yaml:"targets"`
	Exclude []string `yaml:"exclude"`
	Suffix  string   `yaml:"suffix"`
	// ExcludeInit defaults to true; a pointer distinguishes "unset" from
	// an explicit false.
	ExcludeInit *bool `yaml:"excludeInit"`
}

// CacheDTO configures the snapshot cache location.
type CacheDTO struct {
	Path string `yaml:"path"`
}

// CleanDTO configures artifact cleanup.
type CleanDTO struct {
	Patterns  []string `yaml:"patterns"`
	Keep      []string `yaml:"keep"`
	BuildDirs []string `yaml:"buildDirs"`
}

// WorkspaceDTO configures temporary build workspace staging.
type WorkspaceDTO struct {
	Dir      string   `yaml:"dir"`
	Packages []string `yaml:"packages"`
}
