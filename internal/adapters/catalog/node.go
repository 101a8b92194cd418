package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mosaickit/mosaic/internal/adapters/logger" //nolint:depguard // Wired in adapter node
	"github.com/mosaickit/mosaic/internal/core/ports"
)

// NodeID is the unique identifier for the catalog builder Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(log), nil
		},
	})
}
