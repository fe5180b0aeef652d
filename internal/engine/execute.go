package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/fsops"
	"github.com/danieljhkim/refolder/internal/planner"
)

// executor walks a plan in order. In dry-run mode it records what each step
// would do without touching the filesystem; both modes visit the same steps
// in the same order.
type executor struct {
	fs       fsops.FS
	mover    *mover
	logger   *zap.Logger
	dryRun   bool
	failFast bool
	result   *Result
}

func (x *executor) execute(plan *planner.Plan) {
	for _, folder := range plan.Folders {
		ok := x.folder(folder)
		if x.stop() {
			return
		}
		for _, move := range folder.Moves {
			x.move(move, ok)
			if x.stop() {
				return
			}
		}
	}

	for _, d := range plan.Dissolve {
		x.dissolve(d)
		if x.stop() {
			return
		}
	}
}

func (x *executor) stop() bool {
	if x.failFast && x.result.Failed > 0 {
		x.result.Aborted = true
		return true
	}
	return false
}

// folder prepares a target folder and reports whether moves into it may proceed.
func (x *executor) folder(f planner.TargetFolder) bool {
	action := Action{Kind: ActionCreateFolder, Path: f.Path}

	switch f.State {
	case planner.FolderPresent:
		action.Status = StatusSkipped
		action.Detail = DetailExists
		x.result.record(action)
		return true
	case planner.FolderReplace:
		action.Detail = DetailReplace
	}

	if x.dryRun {
		action.Status = StatusPrinted
		x.result.record(action)
		return true
	}

	if f.State == planner.FolderReplace {
		if err := x.fs.Remove(f.Path); err != nil {
			action.Status = StatusFailed
			action.Err = fmt.Errorf("%w: failed to remove %s: %v", ErrDestinationConflict, f.Path, err)
			x.result.record(action)
			return false
		}
	}

	if err := x.fs.MkdirAll(f.Path, 0755); err != nil {
		action.Status = StatusFailed
		action.Err = fmt.Errorf("failed to create directory %s: %w", f.Path, err)
		x.result.record(action)
		return false
	}

	x.logger.Debug("created folder", zap.String("path", f.Path))
	action.Status = StatusCreated
	x.result.record(action)
	return true
}

// move performs or previews one planned move.
func (x *executor) move(m planner.Move, folderReady bool) {
	action := Action{Kind: ActionMove, Path: m.Source, Dest: m.Dest, State: MovePlanned}

	switch {
	case m.InPlace:
		action.Status = StatusSkipped
		action.Detail = DetailInPlace
		x.result.record(action)
		return
	case m.Conflict != nil:
		action.Status = StatusFailed
		action.Err = fmt.Errorf("%w: %s", ErrDestinationExists, m.Conflict.Reason)
		x.result.record(action)
		return
	case !folderReady:
		action.Status = StatusFailed
		action.Err = fmt.Errorf("%w: target folder unavailable", ErrMoveFailed)
		x.result.record(action)
		return
	}

	if m.Overwrite {
		action.Detail = DetailOverwrite
	}

	if x.dryRun {
		action.Status = StatusPrinted
		x.result.record(action)
		return
	}

	if m.Overwrite {
		if err := x.fs.Remove(m.Dest); err != nil {
			action.Status = StatusFailed
			action.Err = fmt.Errorf("%w: failed to remove existing destination: %v", ErrMoveFailed, err)
			x.result.record(action)
			return
		}
	} else if exists, err := x.fs.Exists(m.Dest); err != nil || exists {
		// The destination appeared after planning; never let rename clobber it.
		action.Status = StatusFailed
		action.Err = fmt.Errorf("%w: %s", ErrDestinationExists, m.Dest)
		x.result.record(action)
		return
	}

	state, err := x.mover.Move(m.Source, m.Dest)
	action.State = state
	if err != nil {
		x.logger.Warn("move failed", zap.String("source", m.Source), zap.String("dest", m.Dest), zap.Error(err))
		action.Status = StatusFailed
		action.Err = err
		x.result.record(action)
		return
	}

	action.Status = StatusMoved
	x.result.record(action)
}

// dissolve removes a prior output folder that is no longer a target once
// it is empty.
func (x *executor) dissolve(d planner.DissolveFolder) {
	action := Action{Kind: ActionRemoveFolder, Path: d.Group.Path}

	if x.dryRun {
		if d.WillEmpty {
			action.Status = StatusPrinted
		} else {
			action.Status = StatusSkipped
			action.Detail = DetailNotEmpty
		}
		x.result.record(action)
		return
	}

	entries, err := x.fs.ReadDir(d.Group.Path)
	if err != nil || len(entries) > 0 {
		action.Status = StatusSkipped
		action.Detail = DetailNotEmpty
		x.result.record(action)
		return
	}

	if err := x.fs.Remove(d.Group.Path); err != nil {
		action.Status = StatusFailed
		action.Err = fmt.Errorf("failed to remove %s: %w", d.Group.Path, err)
		x.result.record(action)
		return
	}

	action.Status = StatusRemoved
	x.result.record(action)
}
