// Package io implements the bulk copy of font files from a source tree into a
// flat target directory, with per-file accounting of successes and failures.
package io

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/desertwitch/fontscan/internal/inventory"
	"github.com/desertwitch/fontscan/internal/mime"
	"github.com/desertwitch/fontscan/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	// DiscoveryMaxDepth is the depth cap of the discovery walk.
	DiscoveryMaxDepth = 4

	// DiscoveryMaxSize is the size ceiling for files found by discovery.
	DiscoveryMaxSize = 50 * 1024 * 1024

	targetDirPerms = 0o755
	targetPerms    = 0o644
	tmpSuffix      = ".fontscan"
)

type osProvider interface {
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	UtimesNano(path string, times []unix.Timespec) error
}

type walkProvider interface {
	Walk(root string, cfg schema.TraversalConfig) schema.TraversalOutcome
}

// Observer is notified synchronously about the progress of a copy.
type Observer interface {
	// OnDiscovered is called once after discovery with the amount of files
	// and their combined size.
	OnDiscovered(total int, bytes uint64)

	// OnCopied is called after every copy attempt, successful or not.
	OnCopied(detail schema.CopyDetail)
}

// Handler is the principal implementation for the IO services.
type Handler struct {
	fsHandler   walkProvider
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new IO [Handler].
func NewHandler(fsHandler walkProvider, osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		fsHandler:   fsHandler,
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// DiscoveryConfig returns the [schema.TraversalConfig] used to discover the
// font files of a copy source.
func DiscoveryConfig() schema.TraversalConfig {
	return schema.TraversalConfig{
		Recursive:     true,
		IncludeHidden: false,
		MaxDepth:      schema.DepthLimit(DiscoveryMaxDepth),
		MaxEntrySize:  schema.SizeLimit(DiscoveryMaxSize),
	}
}

// CopyTree copies all font files found below source into the target
// directory, which is created if needed. The source structure is flattened:
// every file is copied to target/name, so that equally named files collide.
// An existing destination fails the attempt unless overwrite is set.
//
// CopyTree never fails as a whole. Precondition failures are returned as
// fatal errors with no attempts, every other failure is recorded for the
// respective file and the remaining files are still processed. The observer
// may be nil.
func (h *Handler) CopyTree(source string, target string, overwrite bool, observer Observer) (outcome schema.CopyOutcome) {
	start := time.Now()

	outcome = schema.CopyOutcome{
		SourceRoot: source,
		TargetRoot: target,
		PerFile:    []schema.CopyDetail{},
	}

	defer func() {
		outcome.ElapsedMs = uint64(time.Since(start).Milliseconds()) //nolint:gosec
	}()

	if err := h.checkSource(source); err != nil {
		slog.Error("Copy was not started: source failed preconditions",
			"path", source,
			"err", err,
		)
		outcome.FatalErrors = append(outcome.FatalErrors, err.Error())

		return outcome
	}

	if err := h.osHandler.MkdirAll(target, targetDirPerms); err != nil {
		err = fmt.Errorf("(io-copy) %w: %s: %w", ErrTargetCreate, target, err)
		slog.Error("Copy was not started: target failed preconditions",
			"path", target,
			"err", err,
		)
		outcome.FatalErrors = append(outcome.FatalErrors, err.Error())

		return outcome
	}

	files, warnings := h.discover(source)
	outcome.Warnings = warnings
	outcome.Discovered = len(files)

	if observer != nil {
		var total uint64
		for _, f := range files {
			total += f.Size
		}
		observer.OnDiscovered(len(files), total)
	}

	for _, entry := range files {
		detail := schema.CopyDetail{
			Name: entry.Name,
			Size: entry.Size,
		}

		dest := filepath.Join(target, entry.Name)

		written, err := h.copyEntry(entry, dest, overwrite)
		if err != nil {
			slog.Warn("Skipped file: failure during copy",
				"path", entry.Path,
				"dest", dest,
				"err", err,
			)
			detail.Error = err.Error()
			outcome.Failed++
		} else {
			slog.Info("Copied:",
				"path", entry.Path,
				"dest", dest,
			)
			detail.Success = true
			outcome.Succeeded++
			outcome.TotalBytesCopied += written
		}

		outcome.PerFile = append(outcome.PerFile, detail)

		if observer != nil {
			observer.OnCopied(detail)
		}
	}

	return outcome
}

// checkSource verifies that the source exists and is a directory.
func (h *Handler) checkSource(source string) error {
	info, err := h.osHandler.Stat(source)
	if err != nil {
		return fmt.Errorf("(io-copy) %w: %s: %w", ErrSourceInvalid, source, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("(io-copy) %w: %s", ErrSourceInvalid, source)
	}

	return nil
}

// discover returns the font files below source in canonical order, along
// with all non-fatal messages of the discovery walk.
func (h *Handler) discover(source string) ([]schema.Entry, []string) {
	walked := h.fsHandler.Walk(source, DiscoveryConfig())

	files := make([]schema.Entry, 0, len(walked.Entries))
	for _, entry := range walked.Entries {
		if entry.IsRegular() && mime.IsFontExtension(entry.Extension) {
			files = append(files, entry)
		}
	}

	inventory.SortEntries(files)

	return files, walked.ErrorMessages
}

// copyEntry copies one discovered [schema.Entry] to its destination path and
// returns the amount of bytes written.
func (h *Handler) copyEntry(entry schema.Entry, dest string, overwrite bool) (uint64, error) {
	if _, err := h.osHandler.Stat(dest); err == nil {
		if !overwrite {
			return 0, fmt.Errorf("(io-copy) %w: %s", ErrAlreadyExists, dest)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("(io-copy) failed to check destination existence: %w", err)
	}

	written, err := h.copyFile(entry, dest, overwrite)
	if err != nil {
		return 0, fmt.Errorf("(io-copy) %w", err)
	}

	return written, nil
}
