// Package inventory implements the read path of a tree inventory: entries
// produced by a traversal are filtered, brought into their canonical order and
// reduced into summary statistics.
package inventory

import (
	"log/slog"
	"time"

	"github.com/desertwitch/fontscan/internal/mime"
	"github.com/desertwitch/fontscan/internal/schema"
)

const fontListingMaxSize = 50 * 1024 * 1024

type walkProvider interface {
	Walk(root string, cfg schema.TraversalConfig) schema.TraversalOutcome
}

// Handler is the principal implementation for the inventory services.
type Handler struct {
	fsHandler walkProvider
}

// NewHandler returns a pointer to a new inventory [Handler].
func NewHandler(fsHandler walkProvider) *Handler {
	return &Handler{
		fsHandler: fsHandler,
	}
}

// Scan walks the directory tree at root, filters and sorts the resulting
// entries and aggregates them into [schema.Stats]. The elapsed time covers
// all three stages. The returned outcome holds the filtered entries.
func (h *Handler) Scan(root string, cfg schema.TraversalConfig) (schema.TraversalOutcome, schema.Stats) {
	start := time.Now()

	outcome := h.fsHandler.Walk(root, cfg)
	outcome.Entries = Apply(outcome.Entries, cfg)

	elapsed := time.Since(start)
	stats := Aggregate(outcome.Entries, elapsed, len(outcome.ErrorMessages))

	slog.Debug("Scan finished",
		"root", outcome.Root,
		"entries", len(outcome.Entries),
		"errors", stats.ErrorCount,
		"elapsed", elapsed,
	)

	return outcome, stats
}

// FontListingConfig returns the [schema.TraversalConfig] of a font listing:
// recursive without a depth limit, hidden entries and files over 50 MiB
// excluded.
func FontListingConfig() schema.TraversalConfig {
	return schema.TraversalConfig{
		Recursive:    true,
		MaxEntrySize: schema.SizeLimit(fontListingMaxSize),
	}
}

// ListFonts scans the directory tree at root for font files of the
// canonical allowlist. The outcome holds only regular font files in
// canonical order.
func (h *Handler) ListFonts(root string) (schema.TraversalOutcome, schema.Stats) {
	start := time.Now()

	outcome := h.fsHandler.Walk(root, FontListingConfig())

	fonts := make([]schema.Entry, 0, len(outcome.Entries))
	for _, entry := range outcome.Entries {
		if entry.IsRegular() && mime.IsFontExtension(entry.Extension) {
			fonts = append(fonts, entry)
		}
	}
	SortEntries(fonts)
	outcome.Entries = fonts

	return outcome, Aggregate(fonts, time.Since(start), len(outcome.ErrorMessages))
}
