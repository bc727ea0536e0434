package schema

import "golang.org/x/sys/unix"

// Metadata is a snapshot of the filesystem metadata of one filesystem object,
// as returned by the operating system (usually from a lstat syscall).
type Metadata struct {
	Device     uint64
	Inode      uint64
	ModifiedAt unix.Timespec
	Size       uint64
	IsDir      bool
	IsRegular  bool
	IsSymlink  bool
	SymlinkTo  string

	// Target is the metadata of the resolved link target, set only for
	// followed symbolic links that could be resolved.
	Target *Metadata
}

// ModifiedUnix returns the modification time in whole seconds since the Unix
// epoch, with times before the epoch becoming 0.
func (m *Metadata) ModifiedUnix() uint64 {
	sec, _ := m.ModifiedAt.Unix()
	if sec < 0 {
		return 0
	}

	return uint64(sec)
}
