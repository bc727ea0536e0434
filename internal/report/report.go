// Package report renders result records for humans (text) and for machines
// (JSON, YAML).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/desertwitch/fontscan/internal/schema"
	"gopkg.in/yaml.v3"
)

// Format is an output format of a report.
type Format string

const (
	// FormatText is the human-readable text format.
	FormatText Format = "text"

	// FormatJSON is indented JSON.
	FormatJSON Format = "json"

	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat returns the [Format] for its (case-insensitive) name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("(report) %w: %q", ErrUnknownFormat, s)
	}
}

// ScanDocument is the structured form of a scan result.
type ScanDocument struct {
	Outcome schema.TraversalOutcome `json:"outcome" yaml:"outcome"`
	Stats   schema.Stats            `json:"stats" yaml:"stats"`
}

// WriteScan writes a scan result in the given [Format].
func WriteScan(w io.Writer, format Format, outcome schema.TraversalOutcome, stats schema.Stats) error {
	if format == FormatText {
		return writeText(w, renderScan(outcome, stats))
	}

	return writeStructured(w, format, ScanDocument{Outcome: outcome, Stats: stats})
}

// WriteFontListing writes the result of a font listing in the given [Format].
func WriteFontListing(w io.Writer, format Format, outcome schema.TraversalOutcome, stats schema.Stats) error {
	if format == FormatText {
		return writeText(w, renderFontListing(outcome, stats))
	}

	return writeStructured(w, format, ScanDocument{Outcome: outcome, Stats: stats})
}

// WriteCopy writes a [schema.CopyOutcome] in the given [Format].
func WriteCopy(w io.Writer, format Format, outcome schema.CopyOutcome) error {
	if format == FormatText {
		return writeText(w, renderCopy(outcome))
	}

	return writeStructured(w, format, outcome)
}

// WriteFontParse writes a [schema.FontParseOutcome] in the given [Format].
func WriteFontParse(w io.Writer, format Format, outcome schema.FontParseOutcome) error {
	if format == FormatText {
		return writeText(w, renderFontParse(outcome))
	}

	return writeStructured(w, format, outcome)
}

func writeText(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("(report) failed to write text: %w", err)
	}

	return nil
}

func writeStructured(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("(report) failed to encode json: %w", err)
		}

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("(report) failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("(report) failed to finish yaml: %w", err)
		}

	case FormatText:
		return fmt.Errorf("(report) %w: text is not structured", ErrUnknownFormat)

	default:
		return fmt.Errorf("(report) %w: %q", ErrUnknownFormat, string(format))
	}

	return nil
}
