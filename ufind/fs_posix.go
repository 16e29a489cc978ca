//go:build unix && !linux

package ufind

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Resolve follows every link in path with stat and canonicalizes the name
// by walking it, as there is no portable way to name an open descriptor.
func (osFS) Resolve(path string) (Entry, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Entry{}, &PathError{Context: "resolve:stat", Path: path, Kind: ErrPathAccess, Err: err}
	}
	e := Entry{
		Path:     path,
		Kind:     kindOfStat(uint32(st.Mode)),
		Identity: Identity{Dev: uint64(st.Dev), Ino: uint64(st.Ino)},
	}
	if e.Kind != KindRegular && e.Kind != KindDirectory {
		return e, nil
	}

	abs, err := filepath.Abs(path)
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}
	if err != nil {
		return Entry{}, &PathError{Context: "resolve:realpath", Path: path, Kind: ErrNameResolution, Err: err}
	}
	e.Path = abs
	return e, nil
}
