package io

import (
	"fmt"

	"github.com/desertwitch/fontscan/internal/schema"
	"golang.org/x/sys/unix"
)

// ensureTimestamp carries the modification time of an [schema.Entry] over to
// a path. The access time is set to the same value.
func (h *Handler) ensureTimestamp(path string, entry schema.Entry) error {
	mtime := unix.Timespec{Sec: int64(entry.ModifiedUnix)} //nolint:gosec
	ts := []unix.Timespec{mtime, mtime}

	if err := h.unixHandler.UtimesNano(path, ts); err != nil {
		return fmt.Errorf("failed to set timestamp: %w", err)
	}

	return nil
}
