package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.whl.build/whl/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.whl.build/whl/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.whl.build/whl/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.whl.build/whl/internal/core/ports"
	"go.whl.build/whl/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			fs.CleanerNodeID,
			fs.StagerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	pl, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	cleaner, err := graft.Dep[ports.ArtifactCleaner](ctx)
	if err != nil {
		return nil, err
	}

	stager, err := graft.Dep[ports.WorkspaceStager](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, pl, cleaner, stager, log), nil
}
