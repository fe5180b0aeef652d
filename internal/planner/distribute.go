package planner

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/refolder/internal/config"
	"github.com/danieljhkim/refolder/internal/discover"
	"github.com/danieljhkim/refolder/internal/fsops"
	"github.com/danieljhkim/refolder/internal/naming"
)

// ErrInvalidCount indicates a folder count below one.
var ErrInvalidCount = errors.New("folder count must be at least 1")

// Distribute partitions candidates into n contiguous groups in input order.
// With base = len/n and rem = len%n, the first rem groups get base+1 files
// and the rest get base.
func Distribute(candidates []discover.Candidate, n int) ([][]discover.Candidate, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	base := len(candidates) / n
	rem := len(candidates) % n

	groups := make([][]discover.Candidate, n)
	next := 0
	for i := 0; i < n; i++ {
		take := base
		if i < rem {
			take++
		}
		groups[i] = candidates[next : next+take : next+take]
		next += take
	}
	return groups, nil
}

// BuildPlan generates a deterministic plan for the discovered candidates.
func BuildPlan(res *discover.Result, opts config.Options, fs fsops.FS) (*Plan, error) {
	groups, err := Distribute(res.Candidates, opts.Subfolders)
	if err != nil {
		return nil, err
	}

	plan := NewPlan(res.Root)
	planned := make(map[string]string, len(res.Candidates))

	for i, files := range groups {
		name, err := naming.FolderName(opts.Prefix, i, opts.Suffix)
		if err != nil {
			return nil, err
		}

		folder := TargetFolder{
			Index: i,
			Name:  name,
			Path:  filepath.Join(res.Root, name),
			Moves: make([]Move, 0, len(files)),
		}
		for _, c := range files {
			move := Move{
				Source: c.Path,
				Dest:   filepath.Join(folder.Path, c.Name),
				Group:  c.Group,
			}
			planned[move.Source] = move.Dest
			folder.Moves = append(folder.Moves, move)
		}
		plan.Folders = append(plan.Folders, folder)
	}

	checker := NewConflictChecker(fs, opts.Force, planned)
	for i := range plan.Folders {
		folder := &plan.Folders[i]

		var conflict *Conflict
		folder.State, conflict = checker.CheckFolder(folder.Path)
		if conflict != nil {
			plan.AddConflict(*conflict)
		}

		for j := range folder.Moves {
			move := &folder.Moves[j]
			checker.CheckMove(move, folder.State)
			if move.Conflict != nil {
				plan.AddConflict(*move.Conflict)
			}
		}
	}

	if err := planDissolve(plan, res, opts.Subfolders, fs); err != nil {
		return nil, err
	}
	return plan, nil
}

// planDissolve schedules prior output folders beyond the new count.
func planDissolve(plan *Plan, res *discover.Result, n int, fs fsops.FS) error {
	blocked := make(map[string]bool)
	for _, f := range plan.Folders {
		for _, m := range f.Moves {
			if m.Conflict != nil {
				blocked[m.Source] = true
			}
		}
	}

	for _, group := range res.Groups {
		if group.Index < n {
			continue
		}

		entries, err := fs.ReadDir(group.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", group.Path, err)
		}

		willEmpty := len(entries) == len(group.Files)
		for _, f := range group.Files {
			if blocked[f] {
				willEmpty = false
				break
			}
		}

		plan.Dissolve = append(plan.Dissolve, DissolveFolder{Group: group, WillEmpty: willEmpty})
	}
	return nil
}
