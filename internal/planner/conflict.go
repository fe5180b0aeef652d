package planner

import (
	"fmt"

	"github.com/danieljhkim/refolder/internal/fsops"
)

// ConflictChecker checks target folders and destinations before execution.
// Moves must be checked in execution order.
type ConflictChecker struct {
	fs    fsops.FS
	force bool

	// planned maps every candidate source to its destination
	planned map[string]string

	// claimed maps destinations to the source assigned to them so far
	claimed map[string]string

	// vacated holds sources whose move precedes the current one
	vacated map[string]bool
}

// NewConflictChecker creates a new ConflictChecker. planned maps each
// candidate source to its planned destination.
func NewConflictChecker(fs fsops.FS, force bool, planned map[string]string) *ConflictChecker {
	if planned == nil {
		planned = make(map[string]string)
	}
	return &ConflictChecker{
		fs:      fs,
		force:   force,
		planned: planned,
		claimed: make(map[string]string),
		vacated: make(map[string]bool),
	}
}

// CheckFolder classifies the path a target folder will occupy.
// A non-directory at the path is a Conflict unless force is enabled, in
// which case the folder is marked for replacement.
func (c *ConflictChecker) CheckFolder(path string) (FolderState, *Conflict) {
	exists, err := c.fs.Exists(path)
	if err != nil {
		return FolderBlocked, &Conflict{
			Kind:     ConflictFolder,
			Path:     path,
			Reason:   fmt.Sprintf("Failed to check path: %v", err),
			Existing: "unknown",
			Incoming: "directory",
		}
	}
	if !exists {
		return FolderAbsent, nil
	}

	// Stat follows symlinks, so a link to a directory is usable as-is.
	if info, err := c.fs.Stat(path); err == nil && info.IsDir() {
		return FolderPresent, nil
	}

	if c.force {
		return FolderReplace, nil
	}
	return FolderBlocked, &Conflict{
		Kind:     ConflictFolder,
		Path:     path,
		Reason:   "Destination exists and is not a directory",
		Existing: "file",
		Incoming: "directory",
	}
}

// CheckMove annotates a move with its in-place, overwrite and conflict state.
// folder is the state of the destination's target folder.
func (c *ConflictChecker) CheckMove(move *Move, folder FolderState) {
	if move.Source == move.Dest {
		move.InPlace = true
		c.claimed[move.Dest] = move.Source
		return
	}

	move.Conflict = c.destConflict(move, folder)
	if move.Conflict == nil {
		c.vacated[move.Source] = true
	}
}

func (c *ConflictChecker) destConflict(move *Move, folder FolderState) *Conflict {
	if prev, ok := c.claimed[move.Dest]; ok && prev != move.Source {
		// Another file already holds or takes this name; the first one wins.
		return &Conflict{
			Kind:     ConflictFile,
			Path:     move.Dest,
			Reason:   fmt.Sprintf("Destination already assigned to %s", prev),
			Existing: "planned",
			Incoming: "file",
		}
	}
	c.claimed[move.Dest] = move.Source

	// Only an existing directory can already hold the destination; a blocked
	// folder fails the whole run during preflight.
	if folder != FolderPresent {
		return nil
	}

	// A candidate occupant is never overwritten, even with force. It is
	// free only once an earlier move has taken it out.
	if next, isCandidate := c.planned[move.Dest]; isCandidate {
		if next != move.Dest && c.vacated[move.Dest] {
			return nil
		}
		return &Conflict{
			Kind:     ConflictFile,
			Path:     move.Dest,
			Reason:   "Destination holds another file being redistributed",
			Existing: "candidate",
			Incoming: "file",
		}
	}

	exists, err := c.fs.Exists(move.Dest)
	if err != nil {
		return &Conflict{
			Kind:     ConflictFile,
			Path:     move.Dest,
			Reason:   fmt.Sprintf("Failed to check path: %v", err),
			Existing: "unknown",
			Incoming: "file",
		}
	}
	if !exists {
		return nil
	}

	if c.force {
		move.Overwrite = true
		return nil
	}
	return &Conflict{
		Kind:     ConflictFile,
		Path:     move.Dest,
		Reason:   "Destination file already exists (use --force to overwrite)",
		Existing: "file",
		Incoming: "file",
	}
}
