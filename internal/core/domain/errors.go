package domain

import "go.trai.ch/zerr"

var (
	// ErrComponentExists is returned when two manifests declare the same component URI.
	ErrComponentExists = zerr.New("component already exists")

	// ErrManifestInvalid is returned when a component manifest is malformed or missing required fields.
	ErrManifestInvalid = zerr.New("invalid component manifest")

	// ErrCatalogNotFound is returned when the catalog root directory does not exist.
	ErrCatalogNotFound = zerr.New("catalog directory not found")

	// ErrGraphLoadFailed is returned when the serialized graph is missing, unreadable or malformed.
	ErrGraphLoadFailed = zerr.New("failed to load component graph")

	// ErrUnknownComponent is returned when a resolution request references URIs absent from the graph.
	ErrUnknownComponent = zerr.New("unknown component")

	// ErrAmbiguousConfigKey is returned when two components in one resolution claim the same config key.
	ErrAmbiguousConfigKey = zerr.New("ambiguous config key")

	// ErrCycleDetected is returned when a cycle is detected in the internal dependency subgraph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNoSelection is returned when a resolution request names no components.
	ErrNoSelection = zerr.New("no components selected")

	// ErrConfigReadFailed is returned when the workspace config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the workspace config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrGraphWriteFailed is returned when the serialized graph cannot be written.
	ErrGraphWriteFailed = zerr.New("failed to write component graph")
)

// ManifestError records a single manifest that failed during a catalog
// build. Broken manifests are skipped and collected, they never abort the
// build of the remaining components.
type ManifestError struct {
	Path string
	Err  error
}
