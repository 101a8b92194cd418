// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mosaickit/mosaic/internal/adapters/catalog"
	_ "github.com/mosaickit/mosaic/internal/adapters/config"
	_ "github.com/mosaickit/mosaic/internal/adapters/logger"
	_ "github.com/mosaickit/mosaic/internal/adapters/overlay"
	_ "github.com/mosaickit/mosaic/internal/adapters/triplestore"
	// Register app and engine nodes.
	_ "github.com/mosaickit/mosaic/internal/app"
	_ "github.com/mosaickit/mosaic/internal/engine/resolver"
)
