package ports

import "github.com/mosaickit/mosaic/internal/core/domain"

// GraphLoader defines the interface for loading a serialized component graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	// Load reads the serialized graph at path. A missing or malformed
	// source is an error; no partial graph is ever returned.
	Load(path string) (*domain.Graph, error)
}
