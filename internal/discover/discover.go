// Package discover finds the files a run redistributes.
//
// A single pass over the root directory yields two kinds of candidates:
// fresh files whose names match the glob, and every file directly inside a
// recognized output folder (prefix plus a valid suffix under the active
// style). Folding prior output folders into the same pool is what makes a
// second run with a different folder count a clean redistribution.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/config"
	"github.com/danieljhkim/refolder/internal/fsops"
	"github.com/danieljhkim/refolder/internal/match"
	"github.com/danieljhkim/refolder/internal/naming"
)

var (
	// ErrRootNotFound indicates the root path does not exist.
	ErrRootNotFound = errors.New("path does not exist")

	// ErrRootNotDir indicates the root path is not a directory.
	ErrRootNotDir = errors.New("path is not a directory")
)

// Candidate is a file eligible for redistribution.
type Candidate struct {
	// Path is the absolute path of the file
	Path string `json:"path"`

	// Name is the base filename
	Name string `json:"name"`

	// Group is the output folder the file was recovered from, empty for fresh matches
	Group string `json:"group,omitempty"`
}

// ExistingGroup is an output folder left by a previous run.
type ExistingGroup struct {
	Name  string   `json:"name"`
	Index int      `json:"index"`
	Path  string   `json:"path"`
	Files []string `json:"files"`
}

// Result is the outcome of a discovery pass.
type Result struct {
	// Root is the absolute, symlink-resolved root directory
	Root string

	// Candidates is sorted by path
	Candidates []Candidate

	// Groups is sorted by index
	Groups []ExistingGroup

	// HighestIndex is the largest existing group index, or -1
	HighestIndex int
}

// Discoverer walks a root directory through an FS.
type Discoverer struct {
	fs     fsops.FS
	logger *zap.Logger
}

// New creates a Discoverer.
func New(fs fsops.FS, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{fs: fs, logger: logger}
}

// ResolveRoot makes root absolute and resolves symlinks where possible.
func ResolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// Discover collects the candidates for opts.
func (d *Discoverer) Discover(opts config.Options) (*Result, error) {
	root, err := ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	info, err := d.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	entries, err := d.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}

	w := &walker{
		Discoverer: d,
		matcher:    opts.Matcher(),
		recursive:  opts.Recursive,
	}
	res := &Result{Root: root, HighestIndex: -1}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(root, name)
		index, isGroupName := naming.ParseFolderName(name, opts.Prefix, opts.Suffix)

		if entry.IsDir() {
			if isGroupName {
				group := w.dissolve(path, name, index)
				res.Groups = append(res.Groups, group)
				if index > res.HighestIndex {
					res.HighestIndex = index
				}
				continue
			}
			if opts.Recursive {
				w.walk(path)
			}
			continue
		}

		if isGroupName {
			// Occupies an output folder name; preflight reports it as a conflict.
			d.logger.Debug("ignoring file named like an output folder", zap.String("path", path))
			continue
		}
		w.visitFile(path, entry.Type(), "")
	}

	sort.Slice(w.found, func(i, j int) bool {
		return w.found[i].Path < w.found[j].Path
	})
	sort.Slice(res.Groups, func(i, j int) bool {
		return res.Groups[i].Index < res.Groups[j].Index
	})
	res.Candidates = w.found

	d.logger.Debug("discovery complete",
		zap.String("root", root),
		zap.Int("candidates", len(res.Candidates)),
		zap.Int("groups", len(res.Groups)),
	)
	return res, nil
}

type walker struct {
	*Discoverer
	matcher   match.Matcher
	recursive bool
	found     []Candidate
}

// dissolve collects every file directly inside an existing output folder.
func (w *walker) dissolve(path, name string, index int) ExistingGroup {
	group := ExistingGroup{Name: name, Index: index, Path: path, Files: []string{}}

	entries, err := w.fs.ReadDir(path)
	if err != nil {
		w.logger.Warn("skipping unreadable output folder", zap.String("path", path), zap.Error(err))
		return group
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			if w.recursive {
				w.walk(child)
			}
			continue
		}
		if w.visitFile(child, entry.Type(), name) {
			group.Files = append(group.Files, child)
		}
	}
	return group
}

// walk descends into an unrelated subdirectory.
func (w *walker) walk(dir string) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.logger.Warn("skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return
	}

	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			w.walk(child)
			continue
		}
		w.visitFile(child, entry.Type(), "")
	}
}

// visitFile records path as a candidate when it is a regular file (or a
// symlink to one) and either comes from a group or matches the glob.
func (w *walker) visitFile(path string, mode os.FileMode, group string) bool {
	if mode&os.ModeSymlink != 0 {
		info, err := w.fs.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return false
		}
	} else if !mode.IsRegular() {
		return false
	}

	name := filepath.Base(path)
	if group == "" && !w.matcher.Match(name) {
		return false
	}

	w.found = append(w.found, Candidate{Path: path, Name: name, Group: group})
	return true
}
