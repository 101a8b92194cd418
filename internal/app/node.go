package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mosaickit/mosaic/internal/adapters/catalog"     //nolint:depguard // Wired in app layer
	"github.com/mosaickit/mosaic/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"github.com/mosaickit/mosaic/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"github.com/mosaickit/mosaic/internal/adapters/overlay"     //nolint:depguard // Wired in app layer
	"github.com/mosaickit/mosaic/internal/adapters/triplestore" //nolint:depguard // Wired in app layer
	"github.com/mosaickit/mosaic/internal/core/ports"
	"github.com/mosaickit/mosaic/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the dependencies the CLI entry
// point needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			triplestore.NodeID,
			catalog.NodeID,
			resolver.NodeID,
			overlay.NodeID,
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

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	graphs, err := graft.Dep[ports.GraphLoader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*catalog.Builder](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.InstallScanner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, graphs, builder, res, scanner, log), nil
}
