package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the component dependency graph. It is built once, from
// manifests or from a serialized snapshot, and only queried after that;
// queries never mutate it and are safe for concurrent use.
type Graph struct {
	components map[InternedString]Component
	// referenced holds URIs that appear only as edge targets. They have
	// no manifest of their own but are still addressable in queries.
	referenced map[InternedString]struct{}
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		components: make(map[InternedString]Component),
		referenced: make(map[InternedString]struct{}),
	}
}

// AddComponent adds a component to the graph.
// It returns an error if a component with the same URI already exists.
func (g *Graph) AddComponent(c *Component) error {
	if _, exists := g.components[c.URI]; exists {
		return zerr.With(ErrComponentExists, "uri", c.URI.String())
	}
	g.components[c.URI] = *c
	for _, dep := range c.Requires {
		g.referenced[dep] = struct{}{}
	}
	return nil
}

// Has reports whether the URI is known to the graph, either as a declared
// component or as the target of a dependency edge.
func (g *Graph) Has(uri string) bool {
	is := NewInternedString(uri)
	if _, ok := g.components[is]; ok {
		return true
	}
	_, ok := g.referenced[is]
	return ok
}

// Component returns the record for a URI. URIs that only appear as edge
// targets yield a stub record with a defaulted name. The second return
// is false when the URI is unknown to the graph entirely.
func (g *Graph) Component(uri string) (Component, bool) {
	is := NewInternedString(uri)
	if c, ok := g.components[is]; ok {
		return c, true
	}
	if _, ok := g.referenced[is]; ok {
		return Component{URI: is, Name: DefaultName(uri)}, true
	}
	return Component{}, false
}

// Components returns every declared component, sorted by URI for
// deterministic output.
func (g *Graph) Components() []Component {
	result := make([]Component, 0, len(g.components))
	for _, c := range g.components {
		result = append(result, c)
	}
	slices.SortFunc(result, func(a, b Component) int {
		return strings.Compare(a.URI.String(), b.URI.String())
	})
	return result
}

// Dependencies returns the transitive internal dependency closure of the
// URI, excluding the URI itself. The traversal is visited-set guarded, so
// cyclic input terminates; cycles are deduplicated, never an error here.
func (g *Graph) Dependencies(uri string) map[string]struct{} {
	start := NewInternedString(uri)
	visited := map[InternedString]struct{}{start: {}}
	stack := []InternedString{start}
	result := make(map[string]struct{})

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c, ok := g.components[u]
		if !ok {
			// Edge target without a manifest: known, but no outgoing edges.
			continue
		}
		for _, dep := range c.Requires {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			result[dep.String()] = struct{}{}
			stack = append(stack, dep)
		}
	}
	return result
}

// Dependents returns the reverse closure: every declared component that
// transitively requires the URI.
func (g *Graph) Dependents(uri string) map[string]struct{} {
	reverse := make(map[InternedString][]InternedString, len(g.components))
	for _, c := range g.components {
		for _, dep := range c.Requires {
			reverse[dep] = append(reverse[dep], c.URI)
		}
	}

	start := NewInternedString(uri)
	visited := map[InternedString]struct{}{start: {}}
	stack := []InternedString{start}
	result := make(map[string]struct{})

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, parent := range reverse[u] {
			if _, seen := visited[parent]; seen {
				continue
			}
			visited[parent] = struct{}{}
			result[parent.String()] = struct{}{}
			stack = append(stack, parent)
		}
	}
	return result
}

// ExternalDeps returns the union of the component's own external package
// specs and those inherited from its transitive internal closure.
func (g *Graph) ExternalDeps(uri string) map[string]struct{} {
	result := make(map[string]struct{})
	collect := func(u string) {
		if c, ok := g.components[NewInternedString(u)]; ok {
			for _, ext := range c.External {
				result[ext] = struct{}{}
			}
		}
	}

	collect(uri)
	for dep := range g.Dependencies(uri) {
		collect(dep)
	}
	return result
}

// ConfigKeys returns the flag-to-URI mapping for the subset of the given
// URIs that carry a config key. Two URIs in the set claiming the same key
// is a configuration error, never silently resolved.
func (g *Graph) ConfigKeys(uris []string) (map[string]string, error) {
	keys := make(map[string]string)
	for _, uri := range uris {
		c, ok := g.components[NewInternedString(uri)]
		if !ok || c.ConfigKey == "" {
			continue
		}
		if prev, dup := keys[c.ConfigKey]; dup && prev != uri {
			err := zerr.With(ErrAmbiguousConfigKey, "config_key", c.ConfigKey)
			err = zerr.With(err, "first_uri", prev)
			return nil, zerr.With(err, "second_uri", uri)
		}
		keys[c.ConfigKey] = uri
	}
	return keys, nil
}

// Validate checks the internal dependency subgraph for cycles using a
// depth-first search. Closure queries terminate on cyclic input anyway,
// so callers typically surface this as a configuration warning.
func (g *Graph) Validate() error {
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		if c, exists := g.components[u]; exists {
			for _, dep := range c.Requires {
				if visited[dep] == 1 {
					return g.buildCycleError(path, dep)
				}
				if visited[dep] == 0 {
					if err := visit(dep); err != nil {
						return err
					}
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for uri := range g.components {
		if visited[uri] == 0 {
			if err := visit(uri); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}
