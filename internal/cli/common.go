package cli

import (
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/engine"
	"github.com/danieljhkim/refolder/internal/fsops"
	"github.com/danieljhkim/refolder/internal/hash"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(logger *zap.Logger) *engine.Engine {
	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), logger)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
