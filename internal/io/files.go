package io

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/desertwitch/fontscan/internal/schema"
	"github.com/zeebo/blake3"
)

// copyFile copies the file of an [schema.Entry] into an intermediate file
// next to the destination, verifies the written bytes against the source
// hash and renames the intermediate file into place. The intermediate file is
// removed whenever the copy does not complete.
func (h *Handler) copyFile(entry schema.Entry, dest string, overwrite bool) (uint64, error) {
	var transferComplete bool

	srcFile, err := h.osHandler.Open(entry.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	tmpPath := dest + tmpSuffix
	defer func() {
		if !transferComplete {
			h.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	dstFile, err := h.osHandler.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, targetPerms)
	if err != nil {
		return 0, fmt.Errorf("failed to open destination file %s: %w", tmpPath, err)
	}
	defer dstFile.Close()

	srcHasher := blake3.New()

	written, err := io.Copy(dstFile, io.TeeReader(srcFile, srcHasher))
	if err != nil {
		return 0, fmt.Errorf("failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, fmt.Errorf("failed to sync destination fs: %w", err)
	}

	if err := dstFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close destination file: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))

	dstChecksum, err := h.hashFile(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("failed to hash destination file: %w", err)
	}

	if srcChecksum != dstChecksum {
		return 0, fmt.Errorf("%w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if err := h.ensureTimestamp(tmpPath, entry); err != nil {
		slog.Warn("Failure setting timestamp on copied file (was ignored)",
			"path", dest,
			"err", err,
		)
	}

	if !overwrite {
		if _, err := h.osHandler.Stat(dest); err == nil {
			return 0, ErrRenameExists
		} else if !errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("failed to check rename destination existence: %w", err)
		}
	}

	if err := h.osHandler.Rename(tmpPath, dest); err != nil {
		return 0, fmt.Errorf("failed to rename temporary file to destination file: %w", err)
	}

	transferComplete = true

	return uint64(written), nil //nolint:gosec
}

// hashFile returns the hex encoded BLAKE3 checksum of a file.
func (h *Handler) hashFile(path string) (string, error) {
	f, err := h.osHandler.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open: %w", err)
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("failed to read: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
