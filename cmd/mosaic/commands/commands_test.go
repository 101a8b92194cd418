package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaickit/mosaic/cmd/mosaic/commands"
	"github.com/mosaickit/mosaic/internal/build"
	"github.com/mosaickit/mosaic/internal/core/domain"
	"github.com/mosaickit/mosaic/internal/engine/resolver"
)

type mockApp struct {
	buildFunc   func(ctx context.Context) error
	listFunc    func(ctx context.Context) ([]domain.Record, error)
	showFunc    func(ctx context.Context, uri string) (*domain.Record, error)
	resolveFunc func(ctx context.Context, selected []string) (*resolver.Resolution, error)
}

func (m *mockApp) Build(ctx context.Context) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx)
	}
	return nil
}

func (m *mockApp) List(ctx context.Context) ([]domain.Record, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) Show(ctx context.Context, uri string) (*domain.Record, error) {
	if m.showFunc != nil {
		return m.showFunc(ctx, uri)
	}
	return &domain.Record{}, nil
}

func (m *mockApp) Resolve(ctx context.Context, selected []string) (*resolver.Resolution, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, selected)
	}
	return &resolver.Resolution{}, nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("invokes build", func(t *testing.T) {
		called := false
		mock := &mockApp{
			buildFunc: func(_ context.Context) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_List(t *testing.T) {
	mock := &mockApp{
		listFunc: func(_ context.Context) ([]domain.Record, error) {
			return []domain.Record{
				{
					Component: domain.Component{
						URI:  domain.NewInternedString("components/backend/auth"),
						Name: "auth",
					},
					Installed: true,
				},
				{
					Component: domain.Component{
						URI:  domain.NewInternedString("components/backend/redis"),
						Name: "redis",
					},
				},
			}, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"list"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "components/backend/auth")
	assert.Contains(t, out, "components/backend/redis")
	assert.Contains(t, out, "*")
}

func TestCommands_Show(t *testing.T) {
	t.Run("prints component details", func(t *testing.T) {
		var capturedURI string
		mock := &mockApp{
			showFunc: func(_ context.Context, uri string) (*domain.Record, error) {
				capturedURI = uri
				return &domain.Record{
					Component: domain.Component{
						URI:       domain.NewInternedString("components/backend/auth"),
						Name:      "auth",
						Help:      "authentication support",
						ConfigKey: "auth",
						Readme:    []byte("# Auth\n"),
						Requires:  domain.NewInternedStrings([]string{"components/backend/forms"}),
						External:  []string{"authlib>=1.3"},
					},
					Installed: true,
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"show", "components/backend/auth"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "components/backend/auth", capturedURI)

		out := buf.String()
		assert.Contains(t, out, "components/backend/auth")
		assert.Contains(t, out, "authentication support")
		assert.Contains(t, out, "Installed: true")
		assert.Contains(t, out, "components/backend/forms")
		assert.Contains(t, out, "authlib>=1.3")
		assert.Contains(t, out, "# Auth")
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, _ string) (*domain.Record, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"show"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("prints sorted resolution", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, selected []string) (*resolver.Resolution, error) {
				assert.Equal(t, []string{"components/backend/auth"}, selected)
				return &resolver.Resolution{
					Needed: map[string]struct{}{
						"components/backend/forms": {},
						"components/backend/auth":  {},
					},
					Installed: map[string]struct{}{},
					ConfigKeys: map[string]string{
						"auth": "components/backend/auth",
					},
					ExternalDeps: map[string]struct{}{
						"authlib>=1.3": {},
					},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"resolve", "components/backend/auth"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "components to install:")
		assert.Contains(t, out, "components/backend/auth")
		assert.Contains(t, out, "components/backend/forms")
		assert.Contains(t, out, "auth (components/backend/auth)")
		assert.Contains(t, out, "python dependencies:")
		assert.Contains(t, out, "authlib>=1.3")
		// auth sorts before forms
		assert.Less(t,
			bytes.Index(buf.Bytes(), []byte("components/backend/auth")),
			bytes.Index(buf.Bytes(), []byte("components/backend/forms")),
		)
	})

	t.Run("reports nothing to install", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string) (*resolver.Resolution, error) {
				return &resolver.Resolution{
					Needed: map[string]struct{}{},
					Installed: map[string]struct{}{
						"components/backend/auth": {},
					},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"resolve", "components/backend/auth"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "nothing to install")
	})

	t.Run("returns error on resolution failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string) (*resolver.Resolution, error) {
				return nil, domain.ErrUnknownComponent
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"resolve", "components/nope"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownComponent)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
