package schema

import (
	"fmt"
)

// EntryKind is the closed set of filesystem object kinds an [Entry] can have.
// It decides about recursion eligibility, inclusion in size totals and about
// the ordering and labelling of entries.
type EntryKind int

const (
	// KindDirectory is a directory.
	KindDirectory EntryKind = iota

	// KindRegularFile is a regular file.
	KindRegularFile

	// KindSymbolicLink is a symbolic link (only reported when links are followed).
	KindSymbolicLink

	// KindOther is anything else (devices, sockets, pipes, ...).
	KindOther
)

// String returns the lowercase label of an [EntryKind].
func (k EntryKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindRegularFile:
		return "file"
	case KindSymbolicLink:
		return "symlink"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MarshalText implements [encoding.TextMarshaler], so that an [EntryKind]
// appears by its label in JSON and YAML output.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one classified filesystem object with its metadata snapshot. It is
// created by the classifier and treated as read-only afterwards.
//
// Optional text fields (Extension, ContentType, LinkTarget) are empty when
// absent.
type Entry struct {
	// Name is the base name of the filesystem object.
	Name string `json:"name" yaml:"name"`

	// Path is the absolute path of the filesystem object.
	Path string `json:"path" yaml:"path"`

	// Kind is the [EntryKind] of the filesystem object.
	Kind EntryKind `json:"kind" yaml:"kind"`

	// Size is the size in bytes (of the link target for followed symlinks).
	Size uint64 `json:"size" yaml:"size"`

	// ModifiedUnix is the modification time in seconds since the Unix epoch.
	ModifiedUnix uint64 `json:"modified" yaml:"modified"`

	// Extension is the lowercase suffix after the last dot of the name.
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`

	// ContentType is the content type inferred from the extension.
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`

	// IsHidden describes if the name starts with a dot.
	IsHidden bool `json:"hidden" yaml:"hidden"`

	// LinkTarget is the raw target of a followed symbolic link.
	LinkTarget string `json:"linkTarget,omitempty" yaml:"linkTarget,omitempty"`

	// TargetIsDir describes if a followed symbolic link resolves to a
	// directory, making it eligible for recursion.
	TargetIsDir bool `json:"-" yaml:"-"`
}

// IsDir returns true if the [Entry] is of [KindDirectory].
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsRegular returns true if the [Entry] is of [KindRegularFile].
func (e *Entry) IsRegular() bool {
	return e.Kind == KindRegularFile
}
