// Package triplestore loads a serialized component graph back into memory.
package triplestore

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"os"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"github.com/mosaickit/mosaic/internal/core/domain"
)

// Loader implements ports.GraphLoader for the statement format produced
// by the catalog builder.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the serialized graph at path. A missing or
// malformed file is fatal; no partial graph is returned.
func (l *Loader) Load(path string) (*domain.Graph, error) {
	// #nosec G304 -- path comes from the workspace configuration
	data, err := os.ReadFile(path)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrGraphLoadFailed.Error())
		return nil, zerr.With(wrapped, "path", path)
	}
	return Parse(data)
}

// record accumulates the statements seen for one subject before the
// component is assembled.
type record struct {
	name      string
	help      string
	configKey string
	readme    []byte
	requires  []string
	external  []string
}

// Parse decodes a serialized graph from memory.
func Parse(data []byte) (*domain.Graph, error) {
	prefixes := make(map[string]string)
	records := make(map[string]*record)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024) // readme literals can be large

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "@prefix") {
			if err := parsePrefix(line, prefixes); err != nil {
				return nil, err
			}
			continue
		}

		st, err := parseLine(line, prefixes)
		if err != nil {
			return nil, err
		}
		if err := apply(records, st); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGraphLoadFailed.Error())
	}

	return assemble(records)
}

// apply folds one statement into the per-subject records.
func apply(records map[string]*record, st statement) error {
	uri, ok := strings.CutPrefix(st.subject, domain.ComponentNamespace)
	if !ok {
		return zerr.With(domain.ErrGraphLoadFailed, "reason", "subject outside component namespace: "+st.subject)
	}

	rec := records[uri]
	if rec == nil {
		rec = &record{}
		records[uri] = rec
	}

	if local, ok := strings.CutPrefix(st.predicate, domain.DependencyNamespace); ok {
		return applyDependency(rec, st, local)
	}

	local, ok := strings.CutPrefix(st.predicate, domain.ComponentNamespace)
	if !ok {
		// Unknown vocabulary is preserved-by-ignoring, matching the
		// tolerance of a real triple store.
		return nil
	}

	if !st.isLiteral {
		return zerr.With(domain.ErrGraphLoadFailed, "reason", "attribute "+local+" requires a literal object")
	}
	switch local {
	case "name":
		rec.name = st.literal
	case "help":
		rec.help = st.literal
	case "configKey":
		rec.configKey = st.literal
	case "readme":
		content, err := base64.StdEncoding.DecodeString(st.literal)
		if err != nil {
			return zerr.Wrap(err, domain.ErrGraphLoadFailed.Error())
		}
		rec.readme = content
	}
	return nil
}

func applyDependency(rec *record, st statement, local string) error {
	if local == "requires" {
		if st.isLiteral {
			return zerr.With(domain.ErrGraphLoadFailed, "reason", "requires edge with literal object")
		}
		target, ok := strings.CutPrefix(st.objectIRI, domain.ComponentNamespace)
		if !ok {
			return zerr.With(domain.ErrGraphLoadFailed, "reason", "edge target outside component namespace: "+st.objectIRI)
		}
		rec.requires = append(rec.requires, target)
		return nil
	}

	// Any other dependency predicate (dep:python today) is an external
	// package literal.
	if !st.isLiteral {
		return zerr.With(domain.ErrGraphLoadFailed, "reason", "external dependency requires a literal object")
	}
	rec.external = append(rec.external, st.literal)
	return nil
}

// assemble turns the accumulated records into a graph.
func assemble(records map[string]*record) (*domain.Graph, error) {
	g := domain.NewGraph()

	uris := make([]string, 0, len(records))
	for uri := range records {
		uris = append(uris, uri)
	}
	slices.Sort(uris)

	for _, uri := range uris {
		rec := records[uri]
		name := rec.name
		if name == "" {
			name = domain.DefaultName(uri)
		}
		component := &domain.Component{
			URI:       domain.NewInternedString(uri),
			Name:      name,
			Help:      rec.help,
			ConfigKey: rec.configKey,
			Readme:    rec.readme,
			Requires:  domain.NewInternedStrings(rec.requires),
			External:  rec.external,
		}
		if err := g.AddComponent(component); err != nil {
			return nil, zerr.Wrap(err, domain.ErrGraphLoadFailed.Error())
		}
	}
	return g, nil
}
