package schema

// TraversalConfig is the configuration of a single traversal. It is passed by
// value and never mutated during a scan.
//
// Depth is measured as directory nesting from the root, with the immediate
// children of the root being at depth 0. MaxDepth bounds how many nested levels
// are entered, not how many are reported.
type TraversalConfig struct {
	// Recursive enables descending into subdirectories.
	Recursive bool `json:"recursive" yaml:"recursive"`

	// IncludeHidden includes entries with names starting with a dot.
	IncludeHidden bool `json:"includeHidden" yaml:"includeHidden"`

	// MaxDepth limits recursion, directories are entered only while the
	// current depth is below it. A nil MaxDepth means no limit.
	MaxDepth *uint `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`

	// FollowSymlinks reports symbolic links (with their target's metadata)
	// and allows recursion through links resolving to directories.
	FollowSymlinks bool `json:"followSymlinks" yaml:"followSymlinks"`

	// NameFilters retains only entries matching any of the filters (by name
	// substring, extension or content type substring). Empty means no filter.
	NameFilters []string `json:"nameFilters,omitempty" yaml:"nameFilters,omitempty"`

	// MaxEntrySize excludes regular files larger than it. A nil MaxEntrySize
	// means no limit.
	MaxEntrySize *uint64 `json:"maxEntrySize,omitempty" yaml:"maxEntrySize,omitempty"`

	// ExcludePatterns are gitignore-style patterns, evaluated relative to the
	// root, that exclude matching entries (and the subtrees of directories).
	ExcludePatterns []string `json:"excludePatterns,omitempty" yaml:"excludePatterns,omitempty"`
}

// DefaultTraversalConfig returns a non-recursive [TraversalConfig] without
// hidden entries, symlinks, filters or limits.
func DefaultTraversalConfig() TraversalConfig {
	return TraversalConfig{}
}

// DepthLimit returns a pointer to a depth, for use as [TraversalConfig.MaxDepth].
func DepthLimit(depth uint) *uint {
	return &depth
}

// SizeLimit returns a pointer to a size, for use as [TraversalConfig.MaxEntrySize].
func SizeLimit(size uint64) *uint64 {
	return &size
}
