package domain

// Workspace describes the resolved on-disk layout mosaic operates on.
// It is derived from mosaic.yaml, or from defaults rooted at the working
// directory when no config file is found.
type Workspace struct {
	// Root is the directory the workspace was resolved from.
	Root string

	// CatalogDir is the component catalog root containing category
	// directories with one manifest per component directory.
	CatalogDir string

	// GraphPath is the location of the serialized component graph.
	GraphPath string

	// ProjectDir is the scaffolded project root probed for installed
	// components.
	ProjectDir string
}
