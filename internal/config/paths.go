// Package config manages refolder configuration.
//
// A run is described by an immutable Options value that is threaded through
// discovery, planning and execution. Defaults for the pattern, prefix and
// suffix style can be stored in a TOML file, located by Paths; the default
// location is ~/.config/refolder/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by refolder.
type Paths struct {
	// Root is the configuration directory (default: ~/.config/refolder)
	Root string

	// Config is the path to the defaults file
	Config string
}

// DefaultPaths returns the default paths for refolder.
// Paths can be overridden with environment variables:
// - REFOLDER_CONFIG: Override the config file path
// - XDG_CONFIG_HOME: Override the parent of the config directory
func DefaultPaths() (*Paths, error) {
	if file := os.Getenv("REFOLDER_CONFIG"); file != "" {
		return &Paths{
			Root:   filepath.Dir(file),
			Config: file,
		}, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	root := filepath.Join(base, "refolder")
	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.toml"),
	}, nil
}
