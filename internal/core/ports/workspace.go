package ports

// WorkspaceStager copies package trees into a clean temporary build
// workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceStager interface {
	// Stage recreates target and copies each dotted package's directory
	// tree from base into it. It returns a mapping from top-level package
	// name to its staged directory. Packages whose directories are missing
	// are skipped.
	Stage(base string, packages []string, target string) (map[string]string, error)
}
