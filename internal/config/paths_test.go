package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv("REFOLDER_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "")

		paths, err := DefaultPaths()
		require.NoError(t, err)

		assert.Equal(t, "refolder", filepath.Base(paths.Root))
		assert.Equal(t, filepath.Join(paths.Root, "config.toml"), paths.Config)
	})

	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("REFOLDER_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")

		paths, err := DefaultPaths()
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("/custom/xdg", "refolder"), paths.Root)
	})

	t.Run("respects REFOLDER_CONFIG (highest priority)", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
		t.Setenv("REFOLDER_CONFIG", "/etc/refolder/defaults.toml")

		paths, err := DefaultPaths()
		require.NoError(t, err)

		assert.Equal(t, "/etc/refolder/defaults.toml", paths.Config)
		assert.Equal(t, "/etc/refolder", paths.Root)
	})
}
