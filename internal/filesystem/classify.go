package filesystem

import (
	"github.com/desertwitch/fontscan/internal/mime"
	"github.com/desertwitch/fontscan/internal/schema"
)

// Classify turns one directory child, given by its name, absolute path and
// [schema.Metadata], into a [schema.Entry]. The boolean is false for children
// that are excluded by the [schema.TraversalConfig]:
//   - hidden names, unless hidden entries are included
//   - symbolic links, unless links are followed
//   - regular files exceeding the maximum entry size
func Classify(name string, path string, md *schema.Metadata, cfg schema.TraversalConfig) (*schema.Entry, bool) {
	hidden := isHidden(name)
	if hidden && !cfg.IncludeHidden {
		return nil, false
	}

	entry := &schema.Entry{
		Name:         name,
		Path:         path,
		Size:         md.Size,
		ModifiedUnix: md.ModifiedUnix(),
		IsHidden:     hidden,
	}

	switch {
	case md.IsDir:
		entry.Kind = schema.KindDirectory

	case md.IsRegular:
		entry.Kind = schema.KindRegularFile

	case md.IsSymlink:
		if !cfg.FollowSymlinks {
			return nil, false
		}
		entry.Kind = schema.KindSymbolicLink
		entry.LinkTarget = md.SymlinkTo
		if md.Target != nil {
			entry.Size = md.Target.Size
			entry.ModifiedUnix = md.Target.ModifiedUnix()
			entry.TargetIsDir = md.Target.IsDir
		}

	default:
		entry.Kind = schema.KindOther
	}

	if entry.Kind == schema.KindRegularFile && cfg.MaxEntrySize != nil && entry.Size > *cfg.MaxEntrySize {
		return nil, false
	}

	entry.Extension = mime.Extension(name)
	if ct, ok := mime.ContentType(entry.Extension); ok {
		entry.ContentType = ct
	}

	return entry, true
}
