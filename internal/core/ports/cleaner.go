package ports

import "go.whl.build/whl/internal/core/domain"

// ArtifactCleaner removes generated build artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type ArtifactCleaner interface {
	// Clean removes files under root matching the spec's patterns, honoring
	// keep patterns, and removes the spec's build directories. It returns
	// the removed file paths. Individual removal failures are reported as
	// warnings, not errors.
	Clean(root string, spec domain.CleanSpec) ([]string, error)
}
