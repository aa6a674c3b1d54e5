// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.whl.build/whl/internal/adapters/config"
	_ "go.whl.build/whl/internal/adapters/fs"
	_ "go.whl.build/whl/internal/adapters/logger"
	_ "go.whl.build/whl/internal/adapters/shell"
	_ "go.whl.build/whl/internal/adapters/snapshot"
	_ "go.whl.build/whl/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.whl.build/whl/internal/app"
	_ "go.whl.build/whl/internal/engine/pipeline"
)
