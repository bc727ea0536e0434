package filesystem

import (
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// excludeMatcher matches absolute paths against gitignore-style patterns,
// relative to the root of a traversal.
type excludeMatcher struct {
	matcher gitignore.IgnoreMatcher
}

// newExcludeMatcher returns a pointer to a new [excludeMatcher] or nil, if
// there are no patterns to match against.
func newExcludeMatcher(root string, patterns []string) *excludeMatcher {
	if len(patterns) == 0 {
		return nil
	}

	return &excludeMatcher{
		matcher: gitignore.NewGitIgnoreFromReader(root, strings.NewReader(strings.Join(patterns, "\n"))),
	}
}

// Excluded returns true if a path is matched by any of the patterns. A nil
// [excludeMatcher] never excludes.
func (e *excludeMatcher) Excluded(path string, isDir bool) bool {
	if e == nil {
		return false
	}

	return e.matcher.Match(path, isDir)
}
