// Package catalog builds the component dependency graph from a catalog
// directory tree and serializes it into the statement format consumed by
// the triple store.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/mosaickit/mosaic/internal/adapters/manifest"
	"github.com/mosaickit/mosaic/internal/core/domain"
	"github.com/mosaickit/mosaic/internal/core/ports"
)

// Builder walks a catalog tree and produces a domain.Graph.
//
// The expected layout is one level of category directories (components,
// services, ...) whose immediate children are component directories each
// carrying a component.toml. The component directory name may embed a
// conditional marker that becomes the config key.
type Builder struct {
	logger ports.Logger
}

// NewBuilder creates a new Builder with the given logger.
func NewBuilder(logger ports.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build constructs the graph from the catalog root. Broken manifests are
// skipped and returned as a list; only a missing catalog root is fatal.
func (b *Builder) Build(catalogDir string) (*domain.Graph, []domain.ManifestError, error) {
	if _, err := os.Stat(catalogDir); err != nil {
		return nil, nil, zerr.With(domain.ErrCatalogNotFound, "path", catalogDir)
	}

	g := domain.NewGraph()
	var manifestErrs []domain.ManifestError

	categories, err := os.ReadDir(catalogDir)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to read catalog directory")
	}

	for _, category := range categories {
		if !category.IsDir() {
			continue
		}
		categoryDir := filepath.Join(catalogDir, category.Name())
		errs, err := b.processCategory(g, categoryDir)
		if err != nil {
			return nil, nil, err
		}
		manifestErrs = append(manifestErrs, errs...)
	}

	// A cycle does not break closure queries, but it is almost certainly
	// a catalog authoring mistake worth surfacing.
	if err := g.Validate(); err != nil {
		b.logger.Warn(fmt.Sprintf("catalog contains a dependency cycle: %v", err))
	}

	return g, manifestErrs, nil
}

func (b *Builder) processCategory(g *domain.Graph, categoryDir string) ([]domain.ManifestError, error) {
	entries, err := os.ReadDir(categoryDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read category directory")
	}

	var manifestErrs []domain.ManifestError
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		componentDir := filepath.Join(categoryDir, entry.Name())
		manifestPath := filepath.Join(componentDir, domain.ManifestFileName)
		if _, err := os.Stat(manifestPath); err != nil {
			// Not every directory is a component.
			continue
		}

		component, err := b.loadComponent(componentDir, manifestPath, entry.Name())
		if err != nil {
			manifestErrs = append(manifestErrs, domain.ManifestError{Path: manifestPath, Err: err})
			continue
		}

		if err := g.AddComponent(component); err != nil {
			manifestErrs = append(manifestErrs, domain.ManifestError{Path: manifestPath, Err: err})
		}
	}
	return manifestErrs, nil
}

func (b *Builder) loadComponent(componentDir, manifestPath, dirName string) (*domain.Component, error) {
	// #nosec G304 -- manifestPath is constructed from the catalog root
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestInvalid.Error())
	}

	decl, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}

	component := &domain.Component{
		URI:  domain.NewInternedString(decl.URI),
		Name: decl.Name,
		Help: decl.Help,
	}

	if key, ok := domain.ExtractConfigKey(dirName); ok {
		component.ConfigKey = key
	}

	for _, dep := range decl.Dependencies {
		switch dep.Kind {
		case domain.DepInternal:
			component.Requires = append(component.Requires, domain.NewInternedString(dep.Value))
		case domain.DepExternal:
			component.External = append(component.External, dep.Value)
		}
	}

	if decl.ReadmePath != "" {
		readmePath := filepath.Join(componentDir, decl.ReadmePath)
		// #nosec G304 -- readmePath is declared by the manifest, relative to its directory
		content, err := os.ReadFile(readmePath)
		if err != nil {
			b.logger.Warn(fmt.Sprintf("readme %s declared by %s is unreadable, skipping", decl.ReadmePath, decl.URI))
		} else {
			component.Readme = content
		}
	}

	return component, nil
}
