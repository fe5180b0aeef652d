package config

import (
	"fmt"

	"github.com/danieljhkim/refolder/internal/match"
	"github.com/danieljhkim/refolder/internal/naming"
)

// Options is the immutable configuration of a single redistribution run.
type Options struct {
	// Root is the directory whose files are redistributed
	Root string

	// Pattern is the shell glob matched against base filenames
	Pattern string

	// Subfolders is the number of target folders (N)
	Subfolders int

	// Prefix and Suffix determine target folder names
	Prefix string
	Suffix naming.Style

	// Recursive descends into unrelated subdirectories
	Recursive bool

	// DryRun prints the planned actions without touching the filesystem
	DryRun bool

	// Force overwrites existing destinations
	Force bool

	// FailFast aborts the run on the first failed move
	FailFast bool

	// CaseSensitive disables case folding in pattern matching
	CaseSensitive bool
}

// DefaultOptions returns the options used when neither a flag nor the
// defaults file sets a value.
func DefaultOptions() Options {
	return Options{
		Pattern: match.DefaultPattern,
		Prefix:  naming.DefaultPrefix,
		Suffix:  naming.StyleNumbers,
	}
}

// Validate checks the options that can be verified without touching the
// filesystem.
func (o Options) Validate() error {
	if o.Root == "" {
		return fmt.Errorf("path is required")
	}
	if o.Subfolders < 1 {
		return fmt.Errorf("subfolders must be greater than zero, got %d", o.Subfolders)
	}
	if err := naming.Validate(o.Prefix, o.Suffix, o.Subfolders); err != nil {
		return err
	}
	return nil
}

// Matcher returns the filename predicate for these options.
func (o Options) Matcher() match.Matcher {
	return match.NewGlob(o.Pattern, o.CaseSensitive)
}

// Mode describes whether the run mutates the filesystem.
func (o Options) Mode() string {
	if o.DryRun {
		return "dry-run"
	}
	return "applied"
}
