package ports

import "go.whl.build/whl/internal/core/domain"

// SourceResolver expands source targets into a deduplicated list of
// concrete file paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SourceResolver interface {
	// Resolve expands the spec's targets relative to root and applies its
	// exclude filters. The result is sorted and free of duplicates.
	Resolve(root string, spec domain.SourceSpec) ([]string, error)
}
