package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/naming"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	logger := zap.NewNop()

	t.Run("missing optional file yields empty defaults", func(t *testing.T) {
		f, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"), false, logger)
		require.NoError(t, err)
		opts, err := f.Apply(DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, DefaultOptions(), opts)
	})

	t.Run("missing required file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"), true, logger)
		assert.Error(t, err)
	})

	t.Run("values are layered over defaults", func(t *testing.T) {
		path := writeConfig(t, `
matching = "*.jpg"
prefix = "batch"
suffix = "letters"
recursive = true
fail_fast = true
`)
		f, err := LoadFile(path, true, logger)
		require.NoError(t, err)

		opts, err := f.Apply(DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "*.jpg", opts.Pattern)
		assert.Equal(t, "batch", opts.Prefix)
		assert.Equal(t, naming.StyleLetters, opts.Suffix)
		assert.True(t, opts.Recursive)
		assert.True(t, opts.FailFast)
		assert.False(t, opts.CaseSensitive)
	})

	t.Run("unknown keys are tolerated", func(t *testing.T) {
		path := writeConfig(t, "prefix = \"x\"\ncolour = \"blue\"\n")
		f, err := LoadFile(path, true, logger)
		require.NoError(t, err)
		require.NotNil(t, f.Prefix)
		assert.Equal(t, "x", *f.Prefix)
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := writeConfig(t, "prefix = \n")
		_, err := LoadFile(path, true, logger)
		assert.Error(t, err)
	})

	t.Run("invalid suffix style", func(t *testing.T) {
		path := writeConfig(t, "suffix = \"roman\"\n")
		f, err := LoadFile(path, true, logger)
		require.NoError(t, err)
		_, err = f.Apply(DefaultOptions())
		assert.ErrorIs(t, err, naming.ErrUnknownStyle)
	})
}
