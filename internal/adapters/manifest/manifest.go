// Package manifest parses per-component declaration files.
package manifest

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"

	"github.com/mosaickit/mosaic/internal/core/domain"
)

// Namespace prefixes recognized on dependency strings. Anything else is
// an internal component reference.
const (
	externalNamespace = "python"
	internalNamespace = "mosaic"
)

// Declaration is the parsed form of a component.toml file.
type Declaration struct {
	URI          string
	Name         string
	Help         string
	ReadmePath   string
	Dependencies []domain.DependencyRef
}

type manifestFile struct {
	Component componentDTO `toml:"component"`
}

type componentDTO struct {
	Name         string   `toml:"name"`
	URI          string   `toml:"uri"`
	Help         string   `toml:"help"`
	Readme       string   `toml:"readme"`
	Dependencies []string `toml:"dependencies"`
}

// Parse decodes a single manifest. Missing uri or name is a hard failure
// for this manifest; the catalog builder skips it and continues.
func Parse(data []byte) (*Declaration, error) {
	var file manifestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestInvalid.Error())
	}

	dto := file.Component
	if dto.URI == "" {
		return nil, zerr.With(domain.ErrManifestInvalid, "missing_field", "uri")
	}
	if dto.Name == "" {
		return nil, zerr.With(domain.ErrManifestInvalid, "missing_field", "name")
	}

	deps := make([]domain.DependencyRef, 0, len(dto.Dependencies))
	for _, raw := range dto.Dependencies {
		deps = append(deps, parseDependency(raw))
	}

	return &Declaration{
		URI:          dto.URI,
		Name:         dto.Name,
		Help:         dto.Help,
		ReadmePath:   dto.Readme,
		Dependencies: deps,
	}, nil
}

// parseDependency classifies a raw dependency string by its namespace
// prefix. "python:pyjwt>=2.8.0" is an external package spec,
// "mosaic:services/oauth" an explicit internal reference, and a bare
// string defaults to internal. A leading slash disables prefix detection.
func parseDependency(raw string) domain.DependencyRef {
	if i := strings.Index(raw, ":"); i > 0 && !strings.HasPrefix(raw, "/") {
		ns, value := raw[:i], raw[i+1:]
		if ns == externalNamespace {
			return domain.DependencyRef{Kind: domain.DepExternal, Value: value}
		}
		if ns == internalNamespace {
			return domain.DependencyRef{Kind: domain.DepInternal, Value: value}
		}
	}
	return domain.DependencyRef{Kind: domain.DepInternal, Value: raw}
}
