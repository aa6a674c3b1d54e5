package domain

// DefaultCachePath is the snapshot cache location used when the project
// configuration does not override it.
const DefaultCachePath = ".whlcache"

// DefaultSourceSuffix is the source file extension considered by default.
const DefaultSourceSuffix = ".py"

// Project is the fully resolved configuration for one packaging project.
// All options are explicit; nothing is read from the process environment.
type Project struct {
	// Root is the directory all relative paths are resolved against.
	Root string

	// CachePath locates the snapshot cache file, relative to Root unless absolute.
	CachePath string

	Compiler  CompilerSpec
	Sources   SourceSpec
	Clean     CleanSpec
	Workspace WorkspaceSpec

	// Artifacts are glob patterns for built outputs to digest in the build report.
	Artifacts []string
}

// CompilerSpec describes the external per-file compiler command.
type CompilerSpec struct {
	// Cmd is the argv template. Occurrences of the literal "{file}" are
	// replaced with the source path; if absent the path is appended.
	Cmd []string

	// Workers bounds how many files are compiled concurrently. Minimum 1.
	Workers int
}

// SourceSpec describes how candidate source files are resolved.
type SourceSpec struct {
	// Targets may be files, directories, glob patterns, or dotted module
	// paths ("pkg.mod" resolves to "pkg/mod<suffix>").
	Targets []string

	// Exclude patterns are matched against the base name, the slash path,
	// and the root-relative path of each candidate.
	Exclude []string

	// Suffix is the source file extension, DefaultSourceSuffix when empty.
	Suffix string

	// ExcludeInit drops "__init__" files from the candidate set.
	ExcludeInit bool
}

// CleanSpec describes which generated artifacts to remove.
type CleanSpec struct {
	// Patterns select files for removal.
	Patterns []string

	// Keep patterns override removal for matching files.
	Keep []string

	// BuildDirs are directories removed wholesale, relative to Root.
	BuildDirs []string
}

// WorkspaceSpec describes the temporary build workspace staging.
type WorkspaceSpec struct {
	// Dir is the workspace directory, recreated on every staging pass.
	Dir string

	// Packages are dotted package names whose trees are copied into Dir.
	Packages []string
}

// SourceSuffix returns the configured suffix or the default.
func (s SourceSpec) SourceSuffix() string {
	if s.Suffix == "" {
		return DefaultSourceSuffix
	}
	return s.Suffix
}
