package inventory

import (
	"time"

	"github.com/desertwitch/fontscan/internal/schema"
)

// Aggregate reduces entries into [schema.Stats]. Only regular files count
// towards the total size, and the largest file is the first regular file with
// the maximum size in the given order. Symbolic links and other entries are
// part of neither count.
func Aggregate(entries []schema.Entry, elapsed time.Duration, errorCount int) schema.Stats {
	stats := schema.Stats{
		ElapsedMs:  uint64(max(elapsed.Milliseconds(), 0)), //nolint:gosec
		ErrorCount: errorCount,
	}

	for i := range entries {
		entry := &entries[i]

		switch entry.Kind {
		case schema.KindDirectory:
			stats.DirCount++

		case schema.KindRegularFile:
			stats.FileCount++
			stats.TotalBytes += entry.Size

			if stats.LargestFile == nil || entry.Size > stats.LargestFile.Size {
				largest := *entry
				stats.LargestFile = &largest
			}

		case schema.KindSymbolicLink, schema.KindOther:
		}
	}

	return stats
}
