package catalog

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"slices"
	"strings"

	"github.com/mosaickit/mosaic/internal/core/domain"
)

// Encode renders the graph as newline-separated statements of the shape
// `<subject> <predicate> <object> .`, one block per component separated
// by a blank line. Output is deterministic for a given graph: components
// are sorted by URI, attributes appear in a fixed order, edges and
// literals are sorted. An empty graph yields just the namespace header.
func Encode(g *domain.Graph) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "@prefix msc: <%s> .\n", domain.ComponentNamespace)
	fmt.Fprintf(&buf, "@prefix dep: <%s> .\n", domain.DependencyNamespace)

	for _, c := range g.Components() {
		buf.WriteByte('\n')
		subject := fmt.Sprintf("<%s%s>", domain.ComponentNamespace, c.URI.String())

		fmt.Fprintf(&buf, "%s msc:name \"%s\" .\n", subject, escapeLiteral(c.Name))
		if c.ConfigKey != "" {
			fmt.Fprintf(&buf, "%s msc:configKey \"%s\" .\n", subject, escapeLiteral(c.ConfigKey))
		}
		if c.Help != "" {
			fmt.Fprintf(&buf, "%s msc:help \"%s\" .\n", subject, escapeLiteral(c.Help))
		}
		if len(c.Readme) > 0 {
			// Base64 keeps arbitrary text and binary content line-safe.
			fmt.Fprintf(&buf, "%s msc:readme \"%s\" .\n", subject, base64.StdEncoding.EncodeToString(c.Readme))
		}

		requires := make([]string, 0, len(c.Requires))
		for _, dep := range c.Requires {
			requires = append(requires, dep.String())
		}
		slices.Sort(requires)
		for _, dep := range requires {
			fmt.Fprintf(&buf, "%s dep:requires <%s%s> .\n", subject, domain.ComponentNamespace, dep)
		}

		external := slices.Clone(c.External)
		slices.Sort(external)
		for _, ext := range external {
			fmt.Fprintf(&buf, "%s dep:python \"%s\" .\n", subject, escapeLiteral(ext))
		}
	}

	return buf.Bytes()
}

// escapeLiteral makes a string safe inside a double-quoted literal.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
