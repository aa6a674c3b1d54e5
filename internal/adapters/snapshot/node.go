package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.whl.build/whl/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store factory node.
const NodeID graft.ID = "adapter.snapshot_store_factory"

func init() {
	graft.Register(graft.Node[ports.SnapshotStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotStoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
