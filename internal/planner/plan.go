package planner

import (
	"github.com/danieljhkim/refolder/internal/discover"
)

// Plan represents a redistribution of candidates into target folders.
type Plan struct {
	// Root is the directory the target folders are created in
	Root string

	// Folders is the ordered list of target folders, one per index
	Folders []TargetFolder

	// Dissolve lists prior output folders that are not targets of this run
	Dissolve []DissolveFolder

	// Conflicts is a list of detected conflicts (empty if no conflicts)
	Conflicts []Conflict
}

// TargetFolder is one destination folder and the files assigned to it.
type TargetFolder struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Path  string `json:"path"`

	// State is what currently occupies Path
	State FolderState `json:"state"`

	// Moves is ordered by discovery order
	Moves []Move `json:"moves"`
}

// Move is the planned relocation of one candidate.
type Move struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`

	// Group is the prior output folder the source came from, if any
	Group string `json:"group,omitempty"`

	// InPlace is set when the candidate already sits at Dest
	InPlace bool `json:"in_place,omitempty"`

	// Overwrite is set when Dest exists and force allows replacing it
	Overwrite bool `json:"overwrite,omitempty"`

	// Conflict blocks the move when non-nil
	Conflict *Conflict `json:"conflict,omitempty"`
}

// DissolveFolder is a prior output folder scheduled for removal once empty.
type DissolveFolder struct {
	Group discover.ExistingGroup `json:"group"`

	// WillEmpty predicts whether every entry leaves the folder during the run
	WillEmpty bool `json:"will_empty"`
}

// FolderState describes the path a target folder will occupy.
type FolderState string

// Folder state constants
const (
	FolderAbsent  FolderState = "absent"
	FolderPresent FolderState = "present"
	FolderBlocked FolderState = "blocked"
	FolderReplace FolderState = "replace"
)

// Conflict represents a conflict detected during planning.
type Conflict struct {
	// Kind is ConflictFolder or ConflictFile
	Kind string `json:"kind"`

	// Path is the path where the conflict was detected
	Path string `json:"path"`

	// Reason is a human-readable explanation of the conflict
	Reason string `json:"reason"`

	// Existing describes what currently exists at the path
	Existing string `json:"existing"`

	// Incoming describes what the plan wants to create
	Incoming string `json:"incoming"`
}

// Conflict kind constants
const (
	// ConflictFolder is fatal: a target folder path holds a non-directory.
	ConflictFolder = "folder"

	// ConflictFile blocks a single move; the run continues.
	ConflictFile = "file"
)

// NewPlan creates a new empty Plan.
func NewPlan(root string) *Plan {
	return &Plan{
		Root:      root,
		Folders:   []TargetFolder{},
		Dissolve:  []DissolveFolder{},
		Conflicts: []Conflict{},
	}
}

// HasConflicts returns true if the plan has any conflicts.
func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// FolderConflicts returns the conflicts that block folder creation.
func (p *Plan) FolderConflicts() []Conflict {
	var out []Conflict
	for _, c := range p.Conflicts {
		if c.Kind == ConflictFolder {
			out = append(out, c)
		}
	}
	return out
}

// AddConflict adds a conflict to the plan.
func (p *Plan) AddConflict(conflict Conflict) {
	p.Conflicts = append(p.Conflicts, conflict)
}

// Sizes returns the number of files assigned to each folder, by index.
func (p *Plan) Sizes() []int {
	sizes := make([]int, len(p.Folders))
	for i, f := range p.Folders {
		sizes[i] = len(f.Moves)
	}
	return sizes
}

// TotalFiles returns the number of assigned files.
func (p *Plan) TotalFiles() int {
	total := 0
	for _, f := range p.Folders {
		total += len(f.Moves)
	}
	return total
}
