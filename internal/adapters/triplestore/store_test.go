package triplestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaickit/mosaic/internal/adapters/catalog"
	"github.com/mosaickit/mosaic/internal/adapters/triplestore"
	"github.com/mosaickit/mosaic/internal/core/domain"
)

func fixtureGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddComponent(&domain.Component{
		URI:       domain.NewInternedString("components/auth"),
		Name:      "auth",
		Help:      `supports "social" login`,
		ConfigKey: "auth",
		Readme:    []byte("# Auth\n\n```python\napp.use(auth)\n```\n"),
		Requires:  domain.NewInternedStrings([]string{"services/oauth"}),
		External:  []string{"authlib>=1.3"},
	}))
	require.NoError(t, g.AddComponent(&domain.Component{
		URI:      domain.NewInternedString("services/oauth"),
		Name:     "oauth",
		Requires: domain.NewInternedStrings([]string{"services/redis"}),
	}))
	require.NoError(t, g.AddComponent(&domain.Component{
		URI:      domain.NewInternedString("services/redis"),
		Name:     "redis",
		External: []string{"redis>=5.0"},
	}))
	return g
}

// TestParse_RoundTrip pins the contract between the serializer and the
// store: whatever the builder writes, the loader reads back unchanged.
func TestParse_RoundTrip(t *testing.T) {
	original := fixtureGraph(t)

	loaded, err := triplestore.Parse(catalog.Encode(original))
	require.NoError(t, err)

	require.Equal(t, len(original.Components()), len(loaded.Components()))
	for _, want := range original.Components() {
		got, ok := loaded.Component(want.URI.String())
		require.True(t, ok, "missing component %s", want.URI.String())
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Help, got.Help)
		assert.Equal(t, want.ConfigKey, got.ConfigKey)
		assert.Equal(t, want.Readme, got.Readme)
		assert.ElementsMatch(t, want.Requires, got.Requires)
		assert.ElementsMatch(t, want.External, got.External)
	}

	deps := loaded.Dependencies("components/auth")
	assert.Contains(t, deps, "services/oauth")
	assert.Contains(t, deps, "services/redis")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.GraphFileName)
	require.NoError(t, os.WriteFile(path, catalog.Encode(fixtureGraph(t)), domain.FilePerm))

	g, err := triplestore.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Len(t, g.Components(), 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := triplestore.NewLoader().Load(filepath.Join(t.TempDir(), "nope.ttl"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrGraphLoadFailed.Error())
}

func TestParse_Empty(t *testing.T) {
	g, err := triplestore.Parse(catalog.Encode(domain.NewGraph()))
	require.NoError(t, err)
	assert.Empty(t, g.Components())
}

func TestParse_DefaultsMissingName(t *testing.T) {
	input := `@prefix msc: <mosaic://> .
@prefix dep: <mosaic://depends/> .

<mosaic://components/auth> dep:requires <mosaic://services/oauth> .
`
	g, err := triplestore.Parse([]byte(input))
	require.NoError(t, err)

	auth, ok := g.Component("components/auth")
	require.True(t, ok)
	assert.Equal(t, "auth", auth.Name)
}

func TestParse_IgnoresUnknownVocabulary(t *testing.T) {
	input := `@prefix msc: <mosaic://> .
@prefix dep: <mosaic://depends/> .
@prefix ex: <http://example.org/> .

<mosaic://components/auth> msc:name "auth" .
<mosaic://components/auth> ex:color "blue" .
`
	g, err := triplestore.Parse([]byte(input))
	require.NoError(t, err)

	auth, ok := g.Component("components/auth")
	require.True(t, ok)
	assert.Equal(t, "auth", auth.Name)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "missing terminal dot",
			input: `@prefix msc: <mosaic://> .
<mosaic://components/auth> msc:name "auth"
`,
		},
		{
			name: "undeclared prefix",
			input: `@prefix msc: <mosaic://> .
<mosaic://components/auth> dep:requires <mosaic://services/oauth> .
`,
		},
		{
			name: "unterminated literal",
			input: `@prefix msc: <mosaic://> .
<mosaic://components/auth> msc:name "auth .
`,
		},
		{
			name: "subject outside namespace",
			input: `@prefix msc: <mosaic://> .
<http://example.org/auth> msc:name "auth" .
`,
		},
		{
			name: "requires edge with literal object",
			input: `@prefix dep: <mosaic://depends/> .
<mosaic://components/auth> dep:requires "services/oauth" .
`,
		},
		{
			name: "invalid readme encoding",
			input: `@prefix msc: <mosaic://> .
<mosaic://components/auth> msc:readme "not base64!!" .
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := triplestore.Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrGraphLoadFailed.Error())
		})
	}
}

func TestParse_EscapedLiteral(t *testing.T) {
	input := `@prefix msc: <mosaic://> .
<mosaic://components/auth> msc:help "supports \"social\" login via C:\\legacy" .
`
	g, err := triplestore.Parse([]byte(input))
	require.NoError(t, err)

	auth, ok := g.Component("components/auth")
	require.True(t, ok)
	assert.Equal(t, `supports "social" login via C:\legacy`, auth.Help)
}
