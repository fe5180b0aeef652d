// Package report renders run results for the terminal.
//
// Action lines are printed in execution order, so a dry-run and the real run
// that follows it print the same sequence with different verbs. Dry-runs also
// get a tree preview of the resulting layout before the summary.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/refolder/internal/engine"
	"github.com/danieljhkim/refolder/internal/planner"
)

var (
	folderColor = color.New(color.Bold)
	doneColor   = color.New(color.FgGreen)
	skipColor   = color.New(color.FgHiBlack)
	failColor   = color.New(color.FgRed, color.Bold)
)

// Mode labels used in the summary.
const (
	ModeDryRun  = "dry-run (no changes made)"
	ModeApplied = "applied"
)

// Summary aggregates the counters of a run.
type Summary struct {
	Folders int    `json:"folders"`
	Files   int    `json:"files"`
	Moved   int    `json:"moved"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
	Mode    string `json:"mode"`
}

// Summarize builds the summary of a result.
func Summarize(res *engine.Result) Summary {
	s := Summary{
		Folders: res.Folders,
		Files:   res.Files,
		Moved:   res.Moved,
		Skipped: res.Skipped,
		Failed:  res.Failed,
		Mode:    ModeApplied,
	}
	if res.DryRun {
		s.Mode = ModeDryRun
	}
	return s
}

// Reporter writes human-readable output for a result.
type Reporter struct {
	out io.Writer
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Write prints the action lines, the dry-run tree and the summary.
func (r *Reporter) Write(res *engine.Result) {
	for _, a := range res.Actions {
		if line := Line(a, res.Root, res.DryRun); line != "" {
			fmt.Fprintln(r.out, line)
		}
	}

	if res.DryRun && res.Plan != nil {
		fmt.Fprintln(r.out)
		fmt.Fprint(r.out, Tree(res.Plan))
	}

	fmt.Fprintln(r.out)
	r.WriteSummary(Summarize(res))
}

// WriteSummary prints the summary block.
func (r *Reporter) WriteSummary(s Summary) {
	fmt.Fprintln(r.out, "Summary:")
	fmt.Fprintf(r.out, "  Total folders: %d\n", s.Folders)
	fmt.Fprintf(r.out, "  Total files:   %d\n", s.Files)
	fmt.Fprintf(r.out, "  Mode:          %s\n", s.Mode)
	if s.Failed > 0 {
		fmt.Fprintf(r.out, "  Failed:        %d\n", s.Failed)
	}
}

// Line formats one action. It returns "" for actions that print nothing,
// such as a target folder that already exists.
func Line(a engine.Action, root string, dryRun bool) string {
	path := rel(root, a.Path)
	dest := rel(root, a.Dest)

	switch a.Kind {
	case engine.ActionCreateFolder:
		switch a.Status {
		case engine.StatusPrinted:
			return "Would create folder: " + path + replaceNote(a)
		case engine.StatusCreated:
			return doneColor.Sprint("Created folder: " + path + replaceNote(a))
		case engine.StatusFailed:
			return failColor.Sprintf("Failed: %s: %s", path, a.Error)
		}

	case engine.ActionMove:
		switch a.Status {
		case engine.StatusPrinted:
			return fmt.Sprintf("Would move: %s -> %s%s", path, dest, overwriteNote(a))
		case engine.StatusMoved:
			return doneColor.Sprintf("Moved: %s -> %s%s", path, dest, overwriteNote(a))
		case engine.StatusSkipped:
			verb := "Skipped"
			if dryRun {
				verb = "Would skip"
			}
			return skipColor.Sprintf("%s: %s (%s)", verb, path, a.Detail)
		case engine.StatusFailed:
			verb := "Failed"
			if dryRun {
				verb = "Would fail"
			}
			return failColor.Sprintf("%s: %s -> %s: %s", verb, path, dest, a.Error)
		}

	case engine.ActionRemoveFolder:
		switch a.Status {
		case engine.StatusPrinted:
			return "Would remove empty folder: " + path
		case engine.StatusRemoved:
			return doneColor.Sprint("Removed empty folder: " + path)
		case engine.StatusFailed:
			return failColor.Sprintf("Failed: %s: %s", path, a.Error)
		}
	}
	return ""
}

func replaceNote(a engine.Action) string {
	if a.Detail == engine.DetailReplace {
		return " (replacing file)"
	}
	return ""
}

func overwriteNote(a engine.Action) string {
	if a.Detail == engine.DetailOverwrite {
		return " (overwrite)"
	}
	return ""
}

// rel shortens path to be relative to root when it lies inside it.
func rel(root, path string) string {
	if path == "" || root == "" {
		return path
	}
	r, err := filepath.Rel(root, path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return path
	}
	return r
}

// Tree renders the layout the plan produces: one entry per target folder in
// index order, each listing the files it will hold, sorted by name. Files
// whose move is blocked by a conflict are left out.
func Tree(plan *planner.Plan) string {
	var b strings.Builder
	b.WriteString(".\n")

	last := len(plan.Folders) - 1
	for i, folder := range plan.Folders {
		branch, indent := "├── ", "│   "
		if i == last {
			branch, indent = "└── ", "    "
		}
		b.WriteString(branch)
		b.WriteString(folderColor.Sprint(folder.Name))
		b.WriteString("\n")

		var files []string
		for _, m := range folder.Moves {
			if m.Conflict == nil {
				files = append(files, filepath.Base(m.Dest))
			}
		}
		sort.Strings(files)

		for j, name := range files {
			leaf := "├── "
			if j == len(files)-1 {
				leaf = "└── "
			}
			b.WriteString(indent)
			b.WriteString(leaf)
			b.WriteString(name)
			b.WriteString("\n")
		}
	}
	return b.String()
}
