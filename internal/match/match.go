// Package match decides whether a filename matches a shell-style glob.
package match

import (
	"github.com/danwakefield/fnmatch"
)

// DefaultPattern matches every filename.
const DefaultPattern = "*"

// Matcher is a pure predicate over base filenames.
type Matcher interface {
	Match(name string) bool
}

// Glob matches base filenames against a shell glob (`*`, `?`, `[...]`).
type Glob struct {
	Pattern       string
	CaseSensitive bool
}

// NewGlob returns a Glob for pattern. An empty pattern matches everything.
func NewGlob(pattern string, caseSensitive bool) *Glob {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Glob{Pattern: pattern, CaseSensitive: caseSensitive}
}

// Match reports whether name matches the pattern. A leading dot is not
// treated specially, so `*` also selects dotfiles.
func (g *Glob) Match(name string) bool {
	flags := fnmatch.FNM_PATHNAME
	if !g.CaseSensitive {
		flags |= fnmatch.FNM_CASEFOLD
	}
	return fnmatch.Match(g.Pattern, name, flags)
}

// Func adapts an ordinary function to the Matcher interface.
type Func func(name string) bool

// Match calls f(name).
func (f Func) Match(name string) bool {
	return f(name)
}
