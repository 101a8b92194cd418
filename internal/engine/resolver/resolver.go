// Package resolver computes install sets from component selections.
package resolver

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"github.com/mosaickit/mosaic/internal/core/domain"
	"github.com/mosaickit/mosaic/internal/core/ports"
)

// Resolution is the result of resolving a selection against a graph
// snapshot and the current install state. All sets are unordered;
// callers needing stable output sort by URI themselves.
type Resolution struct {
	// Needed is the closure of the selection minus what is already
	// installed. Empty means nothing left to do, which is a valid
	// outcome, not an error.
	Needed map[string]struct{}

	// Installed is the subset of the closure that was skipped because
	// the overlay reported it present.
	Installed map[string]struct{}

	// ConfigKeys maps each config key that must be enabled to the URI
	// that claims it, restricted to Needed.
	ConfigKeys map[string]string

	// ExternalDeps is the union of external package specs required by
	// the Needed components, inherited deps included.
	ExternalDeps map[string]struct{}
}

// Resolver is the public entry point of the resolution engine. It is a
// pure function of the graph snapshot, the overlay scan and the
// selection: identical inputs yield identical resolutions.
type Resolver struct {
	scanner ports.InstallScanner
	logger  ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(scanner ports.InstallScanner, logger ports.Logger) *Resolver {
	return &Resolver{scanner: scanner, logger: logger}
}

// Resolve validates the selection, expands it to its transitive closure,
// subtracts installed components and derives config keys and external
// package requirements for the remainder.
func (r *Resolver) Resolve(ctx context.Context, g *domain.Graph, projectRoot string, selected []string) (*Resolution, error) {
	if len(selected) == 0 {
		return nil, domain.ErrNoSelection
	}

	// Unknown URIs are collected and reported together, not fail-fast.
	var unknown []string
	for _, uri := range selected {
		if !g.Has(uri) {
			unknown = append(unknown, uri)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		unknown = slices.Compact(unknown)
		return nil, zerr.With(domain.ErrUnknownComponent, "uris", strings.Join(unknown, ", "))
	}

	needed := make(map[string]struct{}, len(selected))
	for _, uri := range selected {
		needed[uri] = struct{}{}
		for dep := range g.Dependencies(uri) {
			needed[dep] = struct{}{}
		}
	}

	uris := make([]string, 0, len(needed))
	for uri := range needed {
		uris = append(uris, uri)
	}
	installed, err := r.scanner.Scan(ctx, projectRoot, uris)
	if err != nil {
		return nil, zerr.Wrap(err, "install scan failed")
	}

	resolution := &Resolution{
		Needed:       make(map[string]struct{}, len(needed)),
		Installed:    make(map[string]struct{}, len(installed)),
		ExternalDeps: make(map[string]struct{}),
	}
	for uri := range needed {
		if _, ok := installed[uri]; ok {
			resolution.Installed[uri] = struct{}{}
			continue
		}
		resolution.Needed[uri] = struct{}{}
	}
	if len(resolution.Installed) > 0 {
		r.logger.Info(fmt.Sprintf("skipping %d already installed component(s)", len(resolution.Installed)))
	}

	remaining := make([]string, 0, len(resolution.Needed))
	for uri := range resolution.Needed {
		remaining = append(remaining, uri)
	}
	keys, err := g.ConfigKeys(remaining)
	if err != nil {
		return nil, err
	}
	resolution.ConfigKeys = keys

	for _, uri := range remaining {
		for ext := range g.ExternalDeps(uri) {
			resolution.ExternalDeps[ext] = struct{}{}
		}
	}

	return resolution, nil
}
