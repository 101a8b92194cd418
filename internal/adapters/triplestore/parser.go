package triplestore

import (
	"strings"

	"go.trai.ch/zerr"

	"github.com/mosaickit/mosaic/internal/core/domain"
)

// statement is one parsed subject-predicate-object line.
type statement struct {
	subject   string // full IRI, without angle brackets
	predicate string // full IRI, prefix expanded
	objectIRI string // set for IRI objects
	literal   string // set for literal objects, unescaped
	isLiteral bool
}

// parseLine splits a single non-empty statement line. prefixes maps
// declared prefix names to their namespace IRIs.
func parseLine(line string, prefixes map[string]string) (statement, error) {
	rest, ok := strings.CutSuffix(strings.TrimSpace(line), ".")
	if !ok {
		return statement{}, malformed(line, "missing terminal dot")
	}
	rest = strings.TrimSpace(rest)

	subject, rest, err := cutIRI(line, rest)
	if err != nil {
		return statement{}, err
	}

	predToken, rest, found := strings.Cut(strings.TrimSpace(rest), " ")
	if !found {
		return statement{}, malformed(line, "missing object")
	}
	predicate, err := expandPrefix(line, predToken, prefixes)
	if err != nil {
		return statement{}, err
	}

	st := statement{subject: subject, predicate: predicate}

	object := strings.TrimSpace(rest)
	switch {
	case strings.HasPrefix(object, "<"):
		iri, trailing, err := cutIRI(line, object)
		if err != nil {
			return statement{}, err
		}
		if strings.TrimSpace(trailing) != "" {
			return statement{}, malformed(line, "unexpected trailing content")
		}
		st.objectIRI = iri
	case strings.HasPrefix(object, `"`):
		literal, err := unquoteLiteral(line, object)
		if err != nil {
			return statement{}, err
		}
		st.literal = literal
		st.isLiteral = true
	default:
		return statement{}, malformed(line, "object is neither IRI nor literal")
	}

	return st, nil
}

// parsePrefix handles `@prefix name: <iri> .` declarations.
func parsePrefix(line string, prefixes map[string]string) error {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "@prefix"))
	name, rest, found := strings.Cut(rest, ":")
	if !found {
		return malformed(line, "malformed prefix declaration")
	}
	rest = strings.TrimSpace(rest)
	rest, ok := strings.CutSuffix(rest, ".")
	if !ok {
		return malformed(line, "missing terminal dot")
	}
	iri, _, err := cutIRI(line, strings.TrimSpace(rest))
	if err != nil {
		return err
	}
	prefixes[strings.TrimSpace(name)] = iri
	return nil
}

// cutIRI consumes a leading `<...>` token and returns its content and the
// remainder of the line.
func cutIRI(line, s string) (string, string, error) {
	if !strings.HasPrefix(s, "<") {
		return "", "", malformed(line, "expected IRI")
	}
	end := strings.Index(s, ">")
	if end < 0 {
		return "", "", malformed(line, "unterminated IRI")
	}
	return s[1:end], s[end+1:], nil
}

// expandPrefix resolves a `prefix:local` token against the declared
// namespaces.
func expandPrefix(line, token string, prefixes map[string]string) (string, error) {
	prefix, local, found := strings.Cut(token, ":")
	if !found {
		return "", malformed(line, "predicate is not prefixed")
	}
	ns, ok := prefixes[prefix]
	if !ok {
		return "", malformed(line, "undeclared prefix "+prefix)
	}
	return ns + local, nil
}

// unquoteLiteral strips the surrounding quotes and undoes the escaping
// applied by the serializer. The literal must span the rest of the
// statement.
func unquoteLiteral(line, s string) (string, error) {
	var sb strings.Builder
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			sb.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			if strings.TrimSpace(s[i+1:]) != "" {
				return "", malformed(line, "unexpected trailing content")
			}
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", malformed(line, "unterminated literal")
}

func malformed(line, reason string) error {
	err := zerr.With(domain.ErrGraphLoadFailed, "reason", reason)
	return zerr.With(err, "line", strings.TrimSpace(line))
}
