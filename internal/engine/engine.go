// Package engine provides the core business logic for refolder runs.
//
// The engine sequences a run strictly: options are validated, the root is
// discovered, a plan is built and preflighted, and only then is the plan
// printed (dry-run) or executed. Every fatal error is raised before the
// first filesystem mutation.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - executor: Walks a plan in order, producing one Action per step
//   - mover: The rename-or-copy state machine for a single file
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/discover"
	"github.com/danieljhkim/refolder/internal/fsops"
	"github.com/danieljhkim/refolder/internal/hash"
	"github.com/danieljhkim/refolder/internal/naming"
	"github.com/danieljhkim/refolder/internal/planner"
)

// Engine orchestrates redistribution runs.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	logger *zap.Logger
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fs:     fs,
		hasher: hasher,
		logger: logger,
	}
}

// Algorithm steps:
// 1. Validate options
// 2. Discover candidates, dissolving prior output folders
// 3. Build the plan and preflight it (folder conflicts are fatal)
// 4. Print (DryRun) or execute the plan in order
// 5. Return result; ErrMovesFailed if any action failed
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*Result, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	found, err := discover.New(e.fs, e.logger).Discover(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
	}

	result := &Result{
		Root:    found.Root,
		DryRun:  opts.DryRun,
		Actions: []Action{},
	}
	if len(found.Candidates) == 0 {
		e.logger.Info("no files matched", zap.String("root", found.Root), zap.String("pattern", opts.Pattern))
		return result, nil
	}

	plan, err := planner.BuildPlan(found, opts, e.fs)
	if err != nil {
		if errors.Is(err, naming.ErrNameCollision) || errors.Is(err, planner.ErrInvalidCount) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}
	result.Plan = plan
	result.Folders = len(plan.Folders)
	result.Files = plan.TotalFiles()

	if conflicts := plan.FolderConflicts(); len(conflicts) > 0 {
		paths := make([]string, len(conflicts))
		for i, c := range conflicts {
			paths[i] = c.Path
		}
		return result, fmt.Errorf("%w: %s exists and is not a directory (use --force to replace)",
			ErrDestinationConflict, strings.Join(paths, ", "))
	}

	e.logger.Debug("plan ready",
		zap.Int("folders", result.Folders),
		zap.Int("files", result.Files),
		zap.Ints("sizes", plan.Sizes()),
		zap.String("mode", opts.Mode()),
	)
	if plan.HasConflicts() {
		e.logger.Debug("plan has blocked moves", zap.Int("conflicts", len(plan.Conflicts)))
	}

	x := &executor{
		fs:       e.fs,
		mover:    &mover{fs: e.fs, hasher: e.hasher, logger: e.logger},
		logger:   e.logger,
		dryRun:   opts.DryRun,
		failFast: opts.FailFast,
		result:   result,
	}
	x.execute(plan)

	if result.Failed > 0 {
		return result, fmt.Errorf("%w: %d failed", ErrMovesFailed, result.Failed)
	}
	return result, nil
}
