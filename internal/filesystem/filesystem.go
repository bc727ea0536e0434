// Package filesystem implements the inventory of directory trees: the
// classification of single directory entries and the depth-bounded traversal
// of a tree, collecting classified entries and per-directory failures.
package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// osProvider defines operating system methods needed for traversing.
type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Readlink(name string) (string, error)
}

// unixProvider defines Unix operating system methods needed for traversing.
type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for the filesystem services. It
// holds no state across calls, so one [Handler] can serve concurrent
// traversals with disjoint configurations.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
