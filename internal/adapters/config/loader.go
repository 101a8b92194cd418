// Package config provides the workspace configuration loader for mosaic.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mosaickit/mosaic/internal/core/domain"
	"github.com/mosaickit/mosaic/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogDir is the catalog location assumed when no mosaic.yaml
// is found.
const DefaultCatalogDir = "catalog"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the workspace starting at cwd. It walks up the directory
// tree looking for mosaic.yaml; when none exists the workspace defaults
// to cwd with conventional file names, so query commands work in a
// directory that only carries a components.ttl.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Warn(fmt.Sprintf("%s not found, using defaults rooted at %s", domain.ConfigFileName, cwd))
		return defaultWorkspace(cwd), nil
	}

	// #nosec G304 -- configPath is discovered relative to the user's cwd
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file Mosaicfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	root := filepath.Dir(configPath)
	return &domain.Workspace{
		Root:       root,
		CatalogDir: resolvePath(root, file.Catalog, DefaultCatalogDir),
		GraphPath:  resolvePath(root, file.Graph, domain.GraphFileName),
		ProjectDir: resolvePath(root, file.Project, "."),
	}, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func defaultWorkspace(cwd string) *domain.Workspace {
	return &domain.Workspace{
		Root:       cwd,
		CatalogDir: filepath.Join(cwd, DefaultCatalogDir),
		GraphPath:  filepath.Join(cwd, domain.GraphFileName),
		ProjectDir: cwd,
	}
}

func resolvePath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}
