package ufind

import (
	"io/fs"
)

// Kind classifies a directory entry.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRegular
	KindDirectory
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindFIFO
	KindSocket
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symbolic link"
	case KindBlockDevice:
		return "block device"
	case KindCharDevice:
		return "character device"
	case KindFIFO:
		return "FIFO"
	case KindSocket:
		return "socket"
	}
	return "unknown entry type"
}

// KindOf maps file mode type bits to a Kind.
func KindOf(mode fs.FileMode) Kind {
	switch t := mode.Type(); {
	case t == 0:
		return KindRegular
	case t&fs.ModeDir != 0:
		return KindDirectory
	case t&fs.ModeSymlink != 0:
		return KindSymlink
	case t&fs.ModeCharDevice != 0:
		return KindCharDevice
	case t&fs.ModeDevice != 0:
		return KindBlockDevice
	case t&fs.ModeNamedPipe != 0:
		return KindFIFO
	case t&fs.ModeSocket != 0:
		return KindSocket
	}
	return KindUnknown
}

// Identity is the (device, inode) pair naming a file on a host.
type Identity struct {
	Dev uint64
	Ino uint64
}

// Entry describes a resolved path or one child of a directory.
type Entry struct {
	// Path is the canonical path for a resolved entry, empty for children.
	Path string
	// Name is the base name of a child, empty for resolved entries.
	Name string
	Kind Kind
	Identity
	// Err is set on a child whose identity could not be read.
	Err error
}

// Filesystem is the view of the host filesystem a Finder walks.
type Filesystem interface {
	// Resolve opens path following symbolic links and reports the identity,
	// kind and canonical absolute path of what it names. The canonical path
	// is only filled in for regular files and directories.
	Resolve(path string) (Entry, error)
	// ReadDir lists dir in native order, excluding "." and "..". Regular
	// files and directories carry their identity, read without following
	// links; symbolic links and other kinds carry only Name and Kind. When
	// reading fails part way, the entries read so far are returned with the
	// error.
	ReadDir(dir string) ([]Entry, error)
}
