package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"go.whl.build/whl/internal/app"
	_ "go.whl.build/whl/internal/wiring" // Register all nodes
)

// TestComponentsResolve executes the full Graft node graph and verifies the
// CLI-facing components come out wired.
func TestComponentsResolve(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	if err != nil {
		t.Fatalf("failed to resolve component graph: %v", err)
	}
	if components.App == nil {
		t.Error("App was not wired")
	}
	if components.Logger == nil {
		t.Error("Logger was not wired")
	}
}
