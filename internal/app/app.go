// Package app implements the application layer for mosaic.
package app

import (
	"context"
	"fmt"
	"os"
	"slices"

	"go.trai.ch/zerr"

	"github.com/mosaickit/mosaic/internal/adapters/catalog"
	"github.com/mosaickit/mosaic/internal/core/domain"
	"github.com/mosaickit/mosaic/internal/core/ports"
	"github.com/mosaickit/mosaic/internal/engine/resolver"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	graphLoader  ports.GraphLoader
	builder      *catalog.Builder
	resolver     *resolver.Resolver
	scanner      ports.InstallScanner
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	graphs ports.GraphLoader,
	builder *catalog.Builder,
	res *resolver.Resolver,
	scanner ports.InstallScanner,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		graphLoader:  graphs,
		builder:      builder,
		resolver:     res,
		scanner:      scanner,
		logger:       log,
	}
}

// Build rebuilds the serialized graph from the catalog. It is idempotent:
// the same catalog always produces byte-identical output. Broken
// manifests are reported as warnings without aborting the build.
func (a *App) Build(_ context.Context) error {
	ws, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	g, manifestErrs, err := a.builder.Build(ws.CatalogDir)
	if err != nil {
		return err
	}
	for _, me := range manifestErrs {
		a.logger.Warn(fmt.Sprintf("skipped %s: %v", me.Path, me.Err))
	}

	data := catalog.Encode(g)
	if err := os.WriteFile(ws.GraphPath, data, domain.FilePerm); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrGraphWriteFailed.Error())
		return zerr.With(wrapped, "path", ws.GraphPath)
	}

	a.logger.Info(fmt.Sprintf(
		"wrote %d component(s) to %s (fingerprint %s)",
		len(g.Components()), ws.GraphPath, catalog.Fingerprint(data),
	))
	return nil
}

// List returns every component in the graph with its install state,
// sorted by URI.
func (a *App) List(ctx context.Context) ([]domain.Record, error) {
	ws, g, err := a.loadGraph()
	if err != nil {
		return nil, err
	}

	components := g.Components()
	uris := make([]string, len(components))
	for i, c := range components {
		uris[i] = c.URI.String()
	}

	installed, err := a.scanner.Scan(ctx, ws.ProjectDir, uris)
	if err != nil {
		return nil, zerr.Wrap(err, "install scan failed")
	}

	records := make([]domain.Record, len(components))
	for i, c := range components {
		_, ok := installed[c.URI.String()]
		records[i] = domain.Record{Component: c, Installed: ok}
	}
	return records, nil
}

// Show returns a single component with its install state, or an error if
// the URI is unknown.
func (a *App) Show(ctx context.Context, uri string) (*domain.Record, error) {
	ws, g, err := a.loadGraph()
	if err != nil {
		return nil, err
	}

	c, ok := g.Component(uri)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownComponent, "uris", uri)
	}

	installed, err := a.scanner.Scan(ctx, ws.ProjectDir, []string{uri})
	if err != nil {
		return nil, zerr.Wrap(err, "install scan failed")
	}
	_, isInstalled := installed[uri]
	return &domain.Record{Component: c, Installed: isInstalled}, nil
}

// Resolve computes the install set for a selection of component URIs.
func (a *App) Resolve(ctx context.Context, selected []string) (*resolver.Resolution, error) {
	ws, g, err := a.loadGraph()
	if err != nil {
		return nil, err
	}
	return a.resolver.Resolve(ctx, g, ws.ProjectDir, slices.Clone(selected))
}

func (a *App) loadGraph() (*domain.Workspace, *domain.Graph, error) {
	ws, err := a.configLoader.Load(".")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	g, err := a.graphLoader.Load(ws.GraphPath)
	if err != nil {
		return nil, nil, err
	}
	return ws, g, nil
}
