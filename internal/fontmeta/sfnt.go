package fontmeta

import (
	"fmt"
	"strings"

	"github.com/desertwitch/fontscan/internal/mime"
	"github.com/desertwitch/fontscan/internal/schema"
	"golang.org/x/image/font/sfnt"
)

type osProvider interface {
	ReadFile(name string) ([]byte, error)
}

var (
	boldKeywords   = []string{"bold", "black", "heavy"}
	italicKeywords = []string{"italic", "oblique"}
)

// SfntExtractor is an [Extractor] reading the name table of TrueType and
// OpenType fonts and collections. Collections yield their first font.
type SfntExtractor struct {
	osHandler osProvider
}

// NewSfntExtractor returns a pointer to a new [SfntExtractor].
func NewSfntExtractor(osHandler osProvider) *SfntExtractor {
	return &SfntExtractor{
		osHandler: osHandler,
	}
}

// Extract reads and parses the font file at path.
func (e *SfntExtractor) Extract(path string) (schema.FontMapping, error) {
	switch mime.Extension(path) {
	case "woff", "woff2", "eot":
		return schema.FontMapping{}, fmt.Errorf("(fontmeta-extract) %w: %s", ErrUnsupportedFormat, path)
	}

	data, err := e.osHandler.ReadFile(path)
	if err != nil {
		return schema.FontMapping{}, fmt.Errorf("(fontmeta-extract) failed to read %s: %w", path, err)
	}

	mapping, err := ExtractBytes(data)
	if err != nil {
		return schema.FontMapping{}, fmt.Errorf("(fontmeta-extract) failed to parse %s: %w", path, err)
	}
	mapping.FilePath = path

	return mapping, nil
}

// ExtractBytes parses font data into a [schema.FontMapping] without a file
// path. Single fonts are treated as collections of one.
func ExtractBytes(data []byte) (schema.FontMapping, error) {
	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return schema.FontMapping{}, fmt.Errorf("failed to parse font data: %w", err)
	}

	if collection.NumFonts() < 1 {
		return schema.FontMapping{}, ErrEmptyCollection
	}

	font, err := collection.Font(0)
	if err != nil {
		return schema.FontMapping{}, fmt.Errorf("failed to load first font: %w", err)
	}

	var buf sfnt.Buffer

	fontName, ok := firstName(font, &buf, sfnt.NameIDFull, sfnt.NameIDPostScript, sfnt.NameIDFamily)
	if !ok {
		return schema.FontMapping{}, ErrNoFontName
	}

	family, _ := firstName(font, &buf, sfnt.NameIDFamily)
	style, _ := firstName(font, &buf, sfnt.NameIDSubfamily)

	// Faces outside the regular/bold/italic quartet keep their real style
	// in the typographic subfamily and only "Regular" in the subfamily.
	traits, _ := firstName(font, &buf, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)

	return schema.FontMapping{
		FontName:   fontName,
		FamilyName: family,
		StyleName:  style,
		IsBold:     containsAny(traits, boldKeywords),
		IsItalic:   containsAny(traits, italicKeywords),
	}, nil
}

// firstName returns the first non-empty name of the given IDs.
func firstName(font *sfnt.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) (string, bool) {
	for _, id := range ids {
		name, err := font.Name(buf, id)
		if err != nil {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, true
		}
	}

	return "", false
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)

	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}

	return false
}
