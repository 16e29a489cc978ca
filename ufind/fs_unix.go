//go:build unix

package ufind

import (
	"os"

	"golang.org/x/sys/unix"
)

type osFS struct{}

// OS returns the Filesystem backed by the host.
func OS() Filesystem { return osFS{} }

func (osFS) ReadDir(dir string) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &PathError{Context: "enumerate:open", Path: dir, Kind: ErrEnumeration, Err: err}
	}
	defer f.Close()

	// entries read before a failure are still reported
	dirents, rerr := f.ReadDir(-1)

	fd := int(f.Fd())
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		e := Entry{Name: d.Name(), Kind: KindOf(d.Type())}
		if e.Kind == KindRegular || e.Kind == KindDirectory {
			var st unix.Stat_t
			if err := unix.Fstatat(fd, e.Name, &st, unix.AT_SYMLINK_NOFOLLOW); err != nil {
				e.Err = &PathError{Context: "enumerate:fstatat", Path: joinPath(dir, e.Name), Kind: ErrPathAccess, Err: err}
			} else {
				e.Kind = kindOfStat(uint32(st.Mode))
				e.Identity = Identity{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}
			}
		}
		entries = append(entries, e)
	}
	if rerr != nil {
		return entries, &PathError{Context: "enumerate:readdir", Path: dir, Kind: ErrEnumeration, Err: rerr}
	}
	return entries, nil
}

func kindOfStat(mode uint32) Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return KindRegular
	case unix.S_IFDIR:
		return KindDirectory
	case unix.S_IFLNK:
		return KindSymlink
	case unix.S_IFBLK:
		return KindBlockDevice
	case unix.S_IFCHR:
		return KindCharDevice
	case unix.S_IFIFO:
		return KindFIFO
	case unix.S_IFSOCK:
		return KindSocket
	}
	return KindUnknown
}
