package schema

// TraversalOutcome is the result of one traversal. It is owned solely by the
// caller after return.
type TraversalOutcome struct {
	// Root is the root directory of the traversal.
	Root string `json:"root" yaml:"root"`

	// Entries are all classified entries, in the order established by the
	// last processing stage.
	Entries []Entry `json:"entries" yaml:"entries"`

	// ErrorMessages are the recorded (fatal or non-fatal) failures.
	ErrorMessages []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Stats are aggregated statistics derived from a [TraversalOutcome].
type Stats struct {
	FileCount   int    `json:"fileCount" yaml:"fileCount"`
	DirCount    int    `json:"dirCount" yaml:"dirCount"`
	TotalBytes  uint64 `json:"totalBytes" yaml:"totalBytes"`
	LargestFile *Entry `json:"largestFile,omitempty" yaml:"largestFile,omitempty"`
	ElapsedMs   uint64 `json:"elapsedMs" yaml:"elapsedMs"`
	ErrorCount  int    `json:"errorCount" yaml:"errorCount"`
}

// CopyDetail is the outcome of one single file copy attempt.
type CopyDetail struct {
	Name    string `json:"name" yaml:"name"`
	Size    uint64 `json:"size" yaml:"size"`
	Success bool   `json:"success" yaml:"success"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CopyOutcome is the result of one bulk copy. Succeeded and Failed always add
// up to Discovered.
type CopyOutcome struct {
	SourceRoot       string       `json:"sourceRoot" yaml:"sourceRoot"`
	TargetRoot       string       `json:"targetRoot" yaml:"targetRoot"`
	Discovered       int          `json:"discovered" yaml:"discovered"`
	Succeeded        int          `json:"succeeded" yaml:"succeeded"`
	Failed           int          `json:"failed" yaml:"failed"`
	TotalBytesCopied uint64       `json:"totalBytesCopied" yaml:"totalBytesCopied"`
	ElapsedMs        uint64       `json:"elapsedMs" yaml:"elapsedMs"`
	PerFile          []CopyDetail `json:"files" yaml:"files"`

	// FatalErrors are precondition failures, which abort before any attempt.
	FatalErrors []string `json:"fatalErrors,omitempty" yaml:"fatalErrors,omitempty"`

	// Warnings are non-fatal failures encountered during discovery.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// FontMapping is the name and style record extracted from one font file.
type FontMapping struct {
	FilePath   string `json:"filePath" yaml:"filePath"`
	FontName   string `json:"fontName" yaml:"fontName"`
	FamilyName string `json:"familyName,omitempty" yaml:"familyName,omitempty"`
	StyleName  string `json:"styleName,omitempty" yaml:"styleName,omitempty"`
	IsBold     bool   `json:"bold" yaml:"bold"`
	IsItalic   bool   `json:"italic" yaml:"italic"`
}

// FontParseOutcome is the result of extracting [FontMapping] records for all
// font files of a directory tree.
type FontParseOutcome struct {
	Root      string        `json:"root" yaml:"root"`
	Total     int           `json:"total" yaml:"total"`
	Succeeded int           `json:"succeeded" yaml:"succeeded"`
	Failed    int           `json:"failed" yaml:"failed"`
	Mappings  []FontMapping `json:"mappings" yaml:"mappings"`
	Errors    []string      `json:"errors,omitempty" yaml:"errors,omitempty"`
}
