package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/fontscan/internal/schema"
	"golang.org/x/sys/unix"
)

// walkItem is one directory on the work-list of a traversal. The depth is the
// depth of the directory's children.
type walkItem struct {
	path     string
	depth    uint
	listed   bool
	children []os.DirEntry
}

// dirIdentity identifies a directory independent of the path it was reached
// through.
type dirIdentity struct {
	device uint64
	inode  uint64
}

// Walk traverses the directory tree at root according to a
// [schema.TraversalConfig], returning all classified entries in traversal
// order. Walk never fails as a whole: failures of the root preconditions yield
// an outcome with no entries and one message, while failures reading single
// entries or directories are recorded as messages and the traversal continues.
//
// The traversal uses an explicit work-list instead of recursion, so the
// call depth does not grow with the depth of the tree.
func (f *Handler) Walk(root string, cfg schema.TraversalConfig) schema.TraversalOutcome {
	outcome := schema.TraversalOutcome{
		Root:    root,
		Entries: []schema.Entry{},
	}

	absRoot, children, err := f.probeRoot(root)
	if err != nil {
		slog.Warn("Traversal was not started: root failed preconditions",
			"root", root,
			"err", err,
		)
		outcome.ErrorMessages = append(outcome.ErrorMessages, err.Error())

		return outcome
	}
	outcome.Root = absRoot

	excluder := newExcludeMatcher(absRoot, cfg.ExcludePatterns)
	visited := make(map[dirIdentity]struct{})

	if cfg.FollowSymlinks {
		if id, err := f.identify(absRoot); err == nil {
			visited[id] = struct{}{}
		}
	}

	stack := []walkItem{{path: absRoot, depth: 0, listed: true, children: children}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !item.listed {
			item.children, err = f.osHandler.ReadDir(item.path)
			if err != nil {
				slog.Warn("Failure listing directory during walking of directory tree (was skipped)",
					"path", item.path,
					"err", err,
				)
				outcome.ErrorMessages = append(outcome.ErrorMessages,
					fmt.Sprintf("(fs-walk) failed to read directory %s: %v", item.path, err))

				continue
			}
		}

		for _, child := range item.children {
			entry, err := f.classifyChild(item.path, child.Name(), cfg, excluder)
			if err != nil {
				slog.Warn("Failure for path during walking of directory tree (was skipped)",
					"path", filepath.Join(item.path, child.Name()),
					"err", err,
				)
				outcome.ErrorMessages = append(outcome.ErrorMessages, err.Error())

				continue
			}
			if entry == nil {
				continue
			}

			outcome.Entries = append(outcome.Entries, *entry)

			if !canDescend(entry, item.depth, cfg) {
				continue
			}

			if cfg.FollowSymlinks {
				id, err := f.identify(entry.Path)
				if err != nil {
					outcome.ErrorMessages = append(outcome.ErrorMessages, err.Error())

					continue
				}
				if _, seen := visited[id]; seen {
					slog.Warn("Skipped directory: already visited during walking of directory tree",
						"path", entry.Path,
					)
					outcome.ErrorMessages = append(outcome.ErrorMessages,
						fmt.Sprintf("(fs-walk) %v: %s", ErrSymlinkCycle, entry.Path))

					continue
				}
				visited[id] = struct{}{}
			}

			stack = append(stack, walkItem{path: entry.Path, depth: item.depth + 1})
		}
	}

	return outcome
}

// probeRoot checks that the root exists, is a directory and can be listed.
// The absolute root path and its listing are returned.
func (f *Handler) probeRoot(root string) (string, []os.DirEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", nil, fmt.Errorf("(fs-walk) failed to resolve root %s: %w", root, err)
	}

	md, err := f.getTargetMetadata(absRoot)
	if err != nil {
		if errors.Is(err, unix.ENOENT) || errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("(fs-walk) %w: %s", ErrRootNotExist, root)
		}

		return "", nil, fmt.Errorf("(fs-walk) %w: %s: %w", ErrRootNotReadable, root, err)
	}

	if !md.IsDir {
		return "", nil, fmt.Errorf("(fs-walk) %w: %s", ErrRootNotDir, root)
	}

	children, err := f.osHandler.ReadDir(absRoot)
	if err != nil {
		return "", nil, fmt.Errorf("(fs-walk) %w: %s: %w", ErrRootNotReadable, root, err)
	}

	return absRoot, children, nil
}

// classifyChild reads the metadata of one directory child and classifies it.
// A nil [schema.Entry] without error means that the child was excluded.
func (f *Handler) classifyChild(dir string, name string, cfg schema.TraversalConfig, excluder *excludeMatcher) (*schema.Entry, error) {
	if isHidden(name) && !cfg.IncludeHidden {
		return nil, nil //nolint:nilnil
	}

	path := filepath.Join(dir, name)

	md, err := f.getMetadata(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-walk) failed to read metadata of %s: %w", path, err)
	}

	if md.IsSymlink && cfg.FollowSymlinks {
		if target, err := f.getTargetMetadata(path); err == nil {
			md.Target = target
		} else {
			slog.Debug("Symbolic link could not be resolved (reported unresolved)",
				"path", path,
				"err", err,
			)
		}
	}

	isDir := md.IsDir || (md.Target != nil && md.Target.IsDir)
	if excluder.Excluded(path, isDir) {
		return nil, nil //nolint:nilnil
	}

	entry, ok := Classify(name, path, md, cfg)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	return entry, nil
}

// identify returns the [dirIdentity] of a directory (following links).
func (f *Handler) identify(path string) (dirIdentity, error) {
	md, err := f.getTargetMetadata(path)
	if err != nil {
		return dirIdentity{}, fmt.Errorf("(fs-walk) failed to identify %s: %w", path, err)
	}

	return dirIdentity{device: md.Device, inode: md.Inode}, nil
}

// canDescend returns true if the traversal should enter an [schema.Entry]
// whose parent's children are at the given depth.
func canDescend(entry *schema.Entry, depth uint, cfg schema.TraversalConfig) bool {
	if !cfg.Recursive {
		return false
	}

	if cfg.MaxDepth != nil && depth >= *cfg.MaxDepth {
		return false
	}

	switch entry.Kind {
	case schema.KindDirectory:
		return true
	case schema.KindSymbolicLink:
		return cfg.FollowSymlinks && entry.TargetIsDir
	case schema.KindRegularFile, schema.KindOther:
		return false
	default:
		return false
	}
}
