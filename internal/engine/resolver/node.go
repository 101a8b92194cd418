package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mosaickit/mosaic/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"github.com/mosaickit/mosaic/internal/adapters/overlay" //nolint:depguard // Wired in engine wiring
	"github.com/mosaickit/mosaic/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			overlay.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			scanner, err := graft.Dep[ports.InstallScanner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(scanner, log), nil
		},
	})
}
