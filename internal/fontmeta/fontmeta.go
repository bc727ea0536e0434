// Package fontmeta extracts name and style records from font files and
// collects them for all font files of a directory tree.
package fontmeta

import (
	"log/slog"

	"github.com/desertwitch/fontscan/internal/inventory"
	"github.com/desertwitch/fontscan/internal/mime"
	"github.com/desertwitch/fontscan/internal/schema"
)

// ParseMaxDepth is the depth cap of the walk collecting font files.
const ParseMaxDepth = 3

type walkProvider interface {
	Walk(root string, cfg schema.TraversalConfig) schema.TraversalOutcome
}

// Extractor turns a font file into its [schema.FontMapping].
type Extractor interface {
	Extract(path string) (schema.FontMapping, error)
}

// Handler is the principal implementation for the font metadata services.
type Handler struct {
	fsHandler walkProvider
	extractor Extractor
}

// NewHandler returns a pointer to a new font metadata [Handler].
func NewHandler(fsHandler walkProvider, extractor Extractor) *Handler {
	return &Handler{
		fsHandler: fsHandler,
		extractor: extractor,
	}
}

// ParseConfig returns the [schema.TraversalConfig] used to collect the font
// files of a directory tree.
func ParseConfig() schema.TraversalConfig {
	return schema.TraversalConfig{
		Recursive: true,
		MaxDepth:  schema.DepthLimit(ParseMaxDepth),
	}
}

// ParseDirectory extracts a [schema.FontMapping] for every font file below
// root. A file that cannot be parsed is counted as failed and recorded in the
// errors, the remaining files are still processed. Messages of the walk
// itself are recorded in the errors without affecting the counts.
func (h *Handler) ParseDirectory(root string) schema.FontParseOutcome {
	walked := h.fsHandler.Walk(root, ParseConfig())

	outcome := schema.FontParseOutcome{
		Root:     walked.Root,
		Mappings: []schema.FontMapping{},
		Errors:   walked.ErrorMessages,
	}

	files := make([]schema.Entry, 0, len(walked.Entries))
	for _, entry := range walked.Entries {
		if entry.IsRegular() && mime.IsFontExtension(entry.Extension) {
			files = append(files, entry)
		}
	}
	inventory.SortEntries(files)

	outcome.Total = len(files)

	for _, entry := range files {
		mapping, err := h.extractor.Extract(entry.Path)
		if err != nil {
			slog.Warn("Skipped font: failure during parsing",
				"path", entry.Path,
				"err", err,
			)
			outcome.Errors = append(outcome.Errors, err.Error())
			outcome.Failed++

			continue
		}

		outcome.Mappings = append(outcome.Mappings, mapping)
		outcome.Succeeded++
	}

	slog.Debug("Font parsing finished",
		"root", outcome.Root,
		"succeeded", outcome.Succeeded,
		"failed", outcome.Failed,
	)

	return outcome
}
