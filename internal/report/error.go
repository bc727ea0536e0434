package report

import "errors"

// ErrUnknownFormat is an error that occurs when an output format is not known.
var ErrUnknownFormat = errors.New("unknown output format")
