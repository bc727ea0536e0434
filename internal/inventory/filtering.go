package inventory

import (
	"cmp"
	"slices"
	"strings"

	"github.com/desertwitch/fontscan/internal/schema"
)

// Apply retains the entries matching any of the name filters of a
// [schema.TraversalConfig] and returns them in canonical order (see
// [SortEntries]). Without name filters all entries are retained. The input
// slice is not modified.
func Apply(entries []schema.Entry, cfg schema.TraversalConfig) []schema.Entry {
	filtered := make([]schema.Entry, 0, len(entries))

	for _, entry := range entries {
		if Matches(entry, cfg.NameFilters) {
			filtered = append(filtered, entry)
		}
	}

	SortEntries(filtered)

	return filtered
}

// Matches returns true if any filter is a substring of the name, equals the
// extension or is a substring of the content type of an [schema.Entry].
// An empty filter set matches everything.
func Matches(entry schema.Entry, filters []string) bool {
	if len(filters) == 0 {
		return true
	}

	for _, filter := range filters {
		if strings.Contains(entry.Name, filter) {
			return true
		}
		if entry.Extension != "" && entry.Extension == filter {
			return true
		}
		if entry.ContentType != "" && strings.Contains(entry.ContentType, filter) {
			return true
		}
	}

	return false
}

// SortEntries sorts entries in place: directories before everything else,
// then lexicographically by name. The sort is stable.
func SortEntries(entries []schema.Entry) {
	slices.SortStableFunc(entries, compareEntries)
}

func compareEntries(a, b schema.Entry) int {
	if rank := cmp.Compare(kindRank(a.Kind), kindRank(b.Kind)); rank != 0 {
		return rank
	}

	return strings.Compare(a.Name, b.Name)
}

func kindRank(kind schema.EntryKind) int {
	switch kind {
	case schema.KindDirectory:
		return 0
	case schema.KindRegularFile, schema.KindSymbolicLink, schema.KindOther:
		return 1
	default:
		return 1
	}
}
