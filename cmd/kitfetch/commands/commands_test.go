package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kitfetch/cmd/kitfetch/commands"
	"go.trai.ch/kitfetch/internal/build"
	"go.trai.ch/kitfetch/internal/core/domain"
)

type mockApp struct {
	listFunc    func(ctx context.Context, sel domain.Selection) error
	installFunc func(ctx context.Context, sel domain.Selection) error
}

func (m *mockApp) List(ctx context.Context, sel domain.Selection) error {
	if m.listFunc != nil {
		return m.listFunc(ctx, sel)
	}
	return nil
}

func (m *mockApp) Install(ctx context.Context, sel domain.Selection) error {
	if m.installFunc != nil {
		return m.installFunc(ctx, sel)
	}
	return nil
}

func TestCommands_List(t *testing.T) {
	t.Run("no arguments lists everything", func(t *testing.T) {
		var captured domain.Selection
		called := false

		mock := &mockApp{
			listFunc: func(_ context.Context, sel domain.Selection) error {
				captured = sel
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"list"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, captured.All)
	})

	t.Run("all keyword lists everything", func(t *testing.T) {
		var captured domain.Selection

		mock := &mockApp{
			listFunc: func(_ context.Context, sel domain.Selection) error {
				captured = sel
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"list", "all"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, captured.All)
	})

	t.Run("wires positional arguments", func(t *testing.T) {
		var captured domain.Selection

		mock := &mockApp{
			listFunc: func(_ context.Context, sel domain.Selection) error {
				captured = sel
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"list", "linux", "5.12.4", "desktop"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, captured.All)
		assert.Equal(t, domain.PlatformLinux, captured.Platform)
		require.NotNil(t, captured.Version)
		assert.Equal(t, "5.12.4", captured.Version.String())
		assert.Equal(t, "desktop", captured.Target)
		assert.Empty(t, captured.Toolchain)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(_ context.Context, _ domain.Selection) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"list", "solaris"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
	})

	t.Run("rejects malformed version", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(_ context.Context, _ domain.Selection) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"list", "linux", "not-a-version"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadVersion)
	})
}

func TestCommands_Install(t *testing.T) {
	t.Run("wires all four coordinates", func(t *testing.T) {
		var captured domain.Selection
		called := false

		mock := &mockApp{
			installFunc: func(_ context.Context, sel domain.Selection) error {
				captured = sel
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "windows", "5.12.4", "desktop", "win64_msvc2017_64"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, domain.PlatformWindows, captured.Platform)
		require.NotNil(t, captured.Version)
		assert.Equal(t, "5.12.4", captured.Version.String())
		assert.Equal(t, "desktop", captured.Target)
		assert.Equal(t, "win64_msvc2017_64", captured.Toolchain)
		assert.True(t, captured.Complete())
	})

	t.Run("auto resolves to the host platform", func(t *testing.T) {
		var captured domain.Selection

		mock := &mockApp{
			installFunc: func(_ context.Context, sel domain.Selection) error {
				captured = sel
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "auto", "5.9", "desktop", "gcc_64"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, captured.Platform.Token())
	})

	t.Run("requires all arguments", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ context.Context, _ domain.Selection) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "windows", "5.12.4"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("returns error on install failure", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ context.Context, _ domain.Selection) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "linux", "5.9.0", "desktop", "gcc_64"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
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
