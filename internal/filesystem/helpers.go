package filesystem

import "strings"

// handleSize converts a int64 filesize to a uint64 filesize (with sizes < 0 becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}

// isHidden returns true for names starting with a dot.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
