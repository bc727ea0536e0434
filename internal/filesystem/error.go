package filesystem

import "errors"

var (
	// ErrRootNotExist occurs when the root of a traversal does not exist.
	ErrRootNotExist = errors.New("root does not exist")

	// ErrRootNotDir occurs when the root of a traversal is not a directory.
	ErrRootNotDir = errors.New("root is not a directory")

	// ErrRootNotReadable occurs when the root of a traversal exists, but
	// cannot be listed.
	ErrRootNotReadable = errors.New("root is not readable")

	// ErrSymlinkCycle occurs when a followed symbolic link leads into a
	// directory that was already entered during the same traversal.
	ErrSymlinkCycle = errors.New("directory already visited (symlink cycle)")
)
