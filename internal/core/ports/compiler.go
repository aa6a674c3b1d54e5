package ports

import (
	"context"

	"go.whl.build/whl/internal/core/domain"
)

// Compiler runs the external per-file compile operation. The implementation
// is opaque to the rest of the system; only per-file success or failure
// matters.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile invokes the configured command for one source file. A non-nil
	// error signals a per-file failure and must not prevent attempts on the
	// remaining files.
	Compile(ctx context.Context, spec domain.CompilerSpec, path string) error
}
