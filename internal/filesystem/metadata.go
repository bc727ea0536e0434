package filesystem

import (
	"fmt"

	"github.com/desertwitch/fontscan/internal/schema"
	"golang.org/x/sys/unix"
)

// getMetadata returns the [schema.Metadata] of a path (not following links).
func (f *Handler) getMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	metadata := metadataFromStat(&stat)

	if metadata.IsSymlink {
		symlinkTarget, err := f.osHandler.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("(fs-metadata) failed to readlink: %w", err)
		}
		metadata.SymlinkTo = symlinkTarget
	}

	return metadata, nil
}

// getTargetMetadata returns the [schema.Metadata] of a path (following links).
func (f *Handler) getTargetMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Stat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to stat: %w", err)
	}

	return metadataFromStat(&stat), nil
}

func metadataFromStat(stat *unix.Stat_t) *schema.Metadata {
	return &schema.Metadata{
		Device:     uint64(stat.Dev), //nolint:unconvert
		Inode:      stat.Ino,
		ModifiedAt: stat.Mtim,
		Size:       handleSize(stat.Size),
		IsDir:      (stat.Mode & unix.S_IFMT) == unix.S_IFDIR,
		IsRegular:  (stat.Mode & unix.S_IFMT) == unix.S_IFREG,
		IsSymlink:  (stat.Mode & unix.S_IFMT) == unix.S_IFLNK,
	}
}
