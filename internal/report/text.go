package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertwitch/fontscan/internal/schema"
	"github.com/dustin/go-humanize"
)

const ruleWidth = 40

func rule(ch string) string {
	return strings.Repeat(ch, ruleWidth) + "\n"
}

func size(bytes uint64) string {
	return humanize.IBytes(bytes)
}

func writeErrors(b *strings.Builder, title string, messages []string) {
	if len(messages) == 0 {
		return
	}

	fmt.Fprintf(b, "\n%s (%d):\n", title, len(messages))
	for _, msg := range messages {
		fmt.Fprintf(b, "  ! %s\n", msg)
	}
}

func renderScan(outcome schema.TraversalOutcome, stats schema.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scan of %s\n", outcome.Root)
	b.WriteString(rule("="))
	fmt.Fprintf(&b, "Elapsed:     %d ms\n", stats.ElapsedMs)
	fmt.Fprintf(&b, "Directories: %d\n", stats.DirCount)
	fmt.Fprintf(&b, "Files:       %d\n", stats.FileCount)
	fmt.Fprintf(&b, "Total size:  %s\n", size(stats.TotalBytes))

	if stats.LargestFile != nil {
		fmt.Fprintf(&b, "Largest:     %s (%s)\n", stats.LargestFile.Name, size(stats.LargestFile.Size))
	}

	fmt.Fprintf(&b, "Errors:      %d\n", stats.ErrorCount)

	if len(outcome.Entries) > 0 {
		b.WriteString("\n")
		b.WriteString(rule("-"))

		for _, entry := range outcome.Entries {
			b.WriteString(renderEntry(entry))
		}
	}

	writeErrors(&b, "Errors", outcome.ErrorMessages)

	return b.String()
}

func renderEntry(entry schema.Entry) string {
	label := entry.Kind.String()
	if entry.ContentType != "" {
		label = entry.ContentType
	}

	switch entry.Kind {
	case schema.KindDirectory:
		return fmt.Sprintf("[dir]  %s/\n", entry.Name)
	case schema.KindSymbolicLink:
		return fmt.Sprintf("[link] %s -> %s (%s)\n", entry.Name, entry.LinkTarget, size(entry.Size))
	case schema.KindRegularFile:
		return fmt.Sprintf("[file] %s (%s, %s)\n", entry.Name, label, size(entry.Size))
	case schema.KindOther:
		return fmt.Sprintf("[misc] %s\n", entry.Name)
	default:
		return fmt.Sprintf("[%s] %s\n", label, entry.Name)
	}
}

func renderFontListing(outcome schema.TraversalOutcome, stats schema.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Directory: %s\n", outcome.Root)

	if len(outcome.Entries) == 0 {
		b.WriteString("No font files found\n")
		writeErrors(&b, "Errors", outcome.ErrorMessages)

		return b.String()
	}

	fmt.Fprintf(&b, "Found %d font files:\n\n", len(outcome.Entries))

	for _, entry := range outcome.Entries {
		ext := strings.ToUpper(entry.Extension)
		if ext == "" {
			ext = "UNKNOWN"
		}
		fmt.Fprintf(&b, "  * %s (%s) - %s\n", entry.Name, ext, size(entry.Size))
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", size(stats.TotalBytes))
	writeErrors(&b, "Errors", outcome.ErrorMessages)

	return b.String()
}

func renderCopy(outcome schema.CopyOutcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Copy %s -> %s\n", outcome.SourceRoot, outcome.TargetRoot)
	b.WriteString(rule("="))

	if len(outcome.FatalErrors) > 0 {
		writeErrors(&b, "Aborted", outcome.FatalErrors)

		return b.String()
	}

	fmt.Fprintf(&b, "Elapsed:    %d ms\n", outcome.ElapsedMs)
	fmt.Fprintf(&b, "Discovered: %d\n", outcome.Discovered)
	fmt.Fprintf(&b, "Succeeded:  %d\n", outcome.Succeeded)
	fmt.Fprintf(&b, "Failed:     %d\n", outcome.Failed)
	fmt.Fprintf(&b, "Copied:     %s\n", size(outcome.TotalBytesCopied))

	if len(outcome.PerFile) > 0 {
		b.WriteString("\n")
		b.WriteString(rule("-"))

		for _, d := range outcome.PerFile {
			if d.Success {
				fmt.Fprintf(&b, "  ok   %s (%s)\n", d.Name, size(d.Size))
			} else {
				fmt.Fprintf(&b, "  FAIL %s: %s\n", d.Name, d.Error)
			}
		}
	}

	writeErrors(&b, "Warnings", outcome.Warnings)

	return b.String()
}

func renderFontParse(outcome schema.FontParseOutcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Fonts of %s\n", outcome.Root)
	b.WriteString(rule("="))
	fmt.Fprintf(&b, "Total:     %d\n", outcome.Total)
	fmt.Fprintf(&b, "Succeeded: %d\n", outcome.Succeeded)
	fmt.Fprintf(&b, "Failed:    %d\n", outcome.Failed)

	if len(outcome.Mappings) > 0 {
		b.WriteString("\n")
		b.WriteString(rule("-"))
	}

	for i, m := range outcome.Mappings {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.FontName)

		if m.FamilyName != "" {
			fmt.Fprintf(&b, "   Family: %s\n", m.FamilyName)
		}
		if m.StyleName != "" {
			fmt.Fprintf(&b, "   Style:  %s\n", m.StyleName)
		}

		var attrs []string
		if m.IsBold {
			attrs = append(attrs, "bold")
		}
		if m.IsItalic {
			attrs = append(attrs, "italic")
		}
		if len(attrs) > 0 {
			fmt.Fprintf(&b, "   Traits: %s\n", strings.Join(attrs, ", "))
		}

		fmt.Fprintf(&b, "   File:   %s\n", filepath.Base(m.FilePath))
	}

	writeErrors(&b, "Errors", outcome.Errors)

	if outcome.Total == 0 {
		b.WriteString("\nNo font files found\n")
	}

	return b.String()
}
