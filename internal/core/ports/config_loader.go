package ports

import "github.com/mosaickit/mosaic/internal/core/domain"

// ConfigLoader defines the interface for resolving the workspace layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the workspace starting from the given working directory.
	Load(cwd string) (*domain.Workspace, error)
}
