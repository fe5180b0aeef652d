package engine

import (
	"github.com/danieljhkim/refolder/internal/planner"
)

// Result represents the outcome of a run.
type Result struct {
	// Root is the resolved directory that was redistributed
	Root string `json:"root"`

	// DryRun is true when no filesystem mutation was attempted
	DryRun bool `json:"dry_run"`

	// Plan is the generated plan (nil when nothing matched)
	Plan *planner.Plan `json:"-"`

	// Actions is the ordered list of planned or performed actions
	Actions []Action `json:"actions"`

	// Folders is the number of target folders
	Folders int `json:"folders"`

	// Files is the number of candidates assigned to folders
	Files int `json:"files"`

	Moved   int `json:"moved"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`

	// Aborted is set when fail-fast stopped the run early
	Aborted bool `json:"aborted,omitempty"`
}

// Action is a single folder or file action and its outcome.
type Action struct {
	Kind   ActionKind   `json:"kind"`
	Status ActionStatus `json:"status"`

	// Path is the folder path, or the source path of a move
	Path string `json:"path"`

	// Dest is the destination of a move
	Dest string `json:"dest,omitempty"`

	// Detail qualifies the outcome, e.g. DetailInPlace
	Detail string `json:"detail,omitempty"`

	// State is the final state of a move's state machine
	State MoveState `json:"state,omitempty"`

	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

// ActionKind identifies what an action does.
type ActionKind string

// Action kinds
const (
	ActionCreateFolder ActionKind = "create_folder"
	ActionMove         ActionKind = "move"
	ActionRemoveFolder ActionKind = "remove_folder"
)

// ActionStatus is the terminal state of an action.
type ActionStatus string

// Action statuses. StatusPrinted is the only terminal state of a dry-run
// action that would succeed.
const (
	StatusPrinted ActionStatus = "printed"
	StatusCreated ActionStatus = "created"
	StatusMoved   ActionStatus = "moved"
	StatusRemoved ActionStatus = "removed"
	StatusSkipped ActionStatus = "skipped"
	StatusFailed  ActionStatus = "failed"
)

// Action details
const (
	DetailInPlace   = "already in place"
	DetailExists    = "exists"
	DetailReplace   = "replace"
	DetailOverwrite = "overwrite"
	DetailNotEmpty  = "not empty"
)

// Empty reports whether the run found nothing to redistribute.
func (r *Result) Empty() bool {
	return r.Plan == nil
}

// Moves returns the move actions in order.
func (r *Result) Moves() []Action {
	var out []Action
	for _, a := range r.Actions {
		if a.Kind == ActionMove {
			out = append(out, a)
		}
	}
	return out
}

func (r *Result) record(a Action) {
	if a.Err != nil {
		a.Error = a.Err.Error()
	}
	switch a.Status {
	case StatusMoved:
		r.Moved++
	case StatusSkipped:
		if a.Kind == ActionMove {
			r.Skipped++
		}
	case StatusFailed:
		r.Failed++
	}
	r.Actions = append(r.Actions, a)
}
