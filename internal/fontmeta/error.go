package fontmeta

import "errors"

var (
	// ErrUnsupportedFormat is an error that occurs when a font file is of a
	// compressed or legacy format that carries no plain name table.
	ErrUnsupportedFormat = errors.New("unsupported font format")

	// ErrEmptyCollection is an error that occurs when a font collection
	// does not contain a single font.
	ErrEmptyCollection = errors.New("font collection is empty")

	// ErrNoFontName is an error that occurs when a font has neither a full
	// name, a PostScript name nor a family name.
	ErrNoFontName = errors.New("font has no usable name")
)
