// Package mime infers content types from file extensions. The lookup table is
// static and built once at program start, the package holds no mutable state.
package mime

import "strings"

//nolint:gochecknoglobals
var contentTypes = map[string]string{
	// fonts
	"ttf":   "font/ttf",
	"otf":   "font/otf",
	"ttc":   "font/collection",
	"otc":   "font/collection",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"eot":   "application/vnd.ms-fontobject",

	// images
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",
	"tif":  "image/tiff",
	"tiff": "image/tiff",

	// documents
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"odt":  "application/vnd.oasis.opendocument.text",
	"rtf":  "application/rtf",
	"epub": "application/epub+zip",

	// audio
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"flac": "audio/flac",
	"aac":  "audio/aac",
	"m4a":  "audio/mp4",

	// video
	"mp4":  "video/mp4",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",

	// text
	"txt":  "text/plain",
	"md":   "text/markdown",
	"csv":  "text/csv",
	"html": "text/html",
	"htm":  "text/html",
	"css":  "text/css",
	"xml":  "text/xml",
	"json": "application/json",
	"js":   "text/javascript",
}

// fontExtensions is the canonical allowlist of font file extensions, shared by
// the font listing, the font parser and the bulk copy.
//
//nolint:gochecknoglobals
var fontExtensions = map[string]struct{}{
	"ttf":   {},
	"otf":   {},
	"ttc":   {},
	"otc":   {},
	"woff":  {},
	"woff2": {},
	"eot":   {},
}

// ContentType returns the content type for a lowercase extension (without the
// dot). The boolean is false for no or unrecognized extensions.
func ContentType(ext string) (string, bool) {
	if ext == "" {
		return "", false
	}

	ct, ok := contentTypes[ext]

	return ct, ok
}

// IsFontExtension returns true if a lowercase extension is on the font
// allowlist.
func IsFontExtension(ext string) bool {
	_, ok := fontExtensions[ext]

	return ok
}

// FontExtensions returns the font allowlist in a stable order.
func FontExtensions() []string {
	return []string{"ttf", "otf", "ttc", "otc", "woff", "woff2", "eot"}
}

// Extension returns the lowercase suffix after the last dot of a name, or an
// empty string if there is none. Names consisting of a leading dot only (such
// as ".bashrc") have no extension.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}

	return strings.ToLower(name[idx+1:])
}
