package engine

import "github.com/danieljhkim/refolder/internal/config"

// RunRequest represents a request to redistribute files.
type RunRequest struct {
	// Options is the immutable configuration of the run
	Options config.Options
}
