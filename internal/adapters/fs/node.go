package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.whl.build/whl/internal/adapters/logger"
	"go.whl.build/whl/internal/core/ports"
)

const (
	// WalkerNodeID identifies the file walker node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID identifies the source resolver node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// CleanerNodeID identifies the artifact cleaner node.
	CleanerNodeID graft.ID = "adapter.fs.cleaner"
	// StagerNodeID identifies the workspace stager node.
	StagerNodeID graft.ID = "adapter.fs.stager"
	// HasherNodeID identifies the artifact hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker node (concrete type, needed by Resolver, Cleaner and Stager).
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Resolver node.
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	// Cleaner node.
	graft.Register(graft.Node[ports.ArtifactCleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactCleaner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCleaner(walker, log), nil
		},
	})

	// Stager node.
	graft.Register(graft.Node[ports.WorkspaceStager]{
		ID:        StagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.WorkspaceStager, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewStager(walker), nil
		},
	})

	// Hasher node.
	graft.Register(graft.Node[ports.ArtifactHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactHasher, error) {
			return NewHasher(), nil
		},
	})
}
