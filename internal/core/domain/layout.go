package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ComponentNamespace prefixes component identity and attribute terms
	// in the serialized graph.
	ComponentNamespace = "mosaic://"

	// DependencyNamespace prefixes the dependency predicates in the
	// serialized graph.
	DependencyNamespace = "mosaic://depends/"

	// ManifestFileName is the name of the per-component declaration file.
	ManifestFileName = "component.toml"

	// GraphFileName is the default name of the serialized graph file.
	GraphFileName = "components.ttl"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "mosaic.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// InstallPath maps a component URI to its expected location under the
// project root. The namespace prefix is dropped and the remaining URI
// segments become path segments; existence of the path means the
// component is installed. This is the contract shared with whatever
// materializes components on disk.
func InstallPath(projectRoot, uri string) string {
	rel := strings.TrimPrefix(uri, ComponentNamespace)
	return filepath.Join(projectRoot, filepath.FromSlash(rel))
}
