package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.whl.build/whl/internal/adapters/fs"
	"go.whl.build/whl/internal/adapters/logger"
	"go.whl.build/whl/internal/adapters/shell"
	"go.whl.build/whl/internal/adapters/snapshot"
	"go.whl.build/whl/internal/adapters/telemetry/progrock"
	"go.whl.build/whl/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.HasherNodeID,
			snapshot.NodeID,
			shell.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runPipelineNode,
	})
}

func runPipelineNode(ctx context.Context) (*Pipeline, error) {
	resolver, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.SnapshotStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.ArtifactHasher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, stores, compiler, hasher, telemetry, log), nil
}
