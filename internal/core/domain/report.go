package domain

// BuildReport summarizes one incremental build pass.
type BuildReport struct {
	// Candidates is the number of resolved source files considered.
	Candidates int

	// Changed holds the paths whose recorded state differed from their
	// current state, in candidate order.
	Changed []string

	// Compiled holds the changed paths that compiled successfully, in
	// candidate order.
	Compiled []string

	// Failed holds per-file compile failures. A failure never aborts the
	// remaining files.
	Failed []CompileFailure

	// Skipped is true when no changes were detected and the compile step
	// was not invoked at all.
	Skipped bool

	// Artifacts lists digested build outputs.
	Artifacts []Artifact
}

// CompileFailure records a single file that failed to compile.
type CompileFailure struct {
	Path string
	Err  error
}

// Artifact is a built output with its content digest.
type Artifact struct {
	Path   string
	Digest string
}
