package triplestore

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mosaickit/mosaic/internal/core/ports"
)

// NodeID is the unique identifier for the graph loader Graft node.
const NodeID graft.ID = "adapter.triplestore"

func init() {
	graft.Register(graft.Node[ports.GraphLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphLoader, error) {
			return NewLoader(), nil
		},
	})
}
