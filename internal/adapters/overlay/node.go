package overlay

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mosaickit/mosaic/internal/core/ports"
)

// NodeID is the unique identifier for the install scanner Graft node.
const NodeID graft.ID = "adapter.overlay"

func init() {
	graft.Register(graft.Node[ports.InstallScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallScanner, error) {
			return NewScanner(), nil
		},
	})
}
