// Package domain contains the core domain models and business logic for the component dependency graph.
package domain

import "strings"

// DepKind discriminates the two dependency edge types a component can declare.
type DepKind string

const (
	// DepInternal is an edge to another component in the catalog. It
	// participates in transitive closure.
	DepInternal DepKind = "internal"

	// DepExternal is a leaf requirement on a package manager dependency
	// (e.g. a Python package spec). It never becomes a graph node.
	DepExternal DepKind = "external"
)

// DependencyRef is a single typed dependency parsed from a manifest.
// For internal references Value is a component URI; for external
// references it is an opaque package spec like "pyjwt>=2.8.0".
type DependencyRef struct {
	Kind  DepKind
	Value string
}

// Component is a node in the catalog graph.
// It uses InternedString for URIs since the same URI appears as a map key,
// an edge target and a reverse-edge source.
type Component struct {
	URI       InternedString
	Name      string
	Help      string
	ConfigKey string
	Readme    []byte
	Requires  []InternedString
	External  []string
}

// Record pairs a component with its overlay-derived install state.
// Installed is recomputed per query session and never serialized.
type Record struct {
	Component
	Installed bool
}

// DefaultName returns the display name for a URI that declared none:
// the last slash-separated segment.
func DefaultName(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
