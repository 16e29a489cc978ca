package ufind

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Resolve opens path without O_NOFOLLOW so every link in it is followed, then
// reads the identity and the kernel's name for the opened handle.
func (osFS) Resolve(path string) (Entry, error) {
	fd, err := unix.Open(path, unix.O_PATH|unix.O_CLOEXEC, 0)
	if err != nil {
		return Entry{}, &PathError{Context: "resolve:open", Path: path, Kind: ErrPathAccess, Err: err}
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return Entry{}, &PathError{Context: "resolve:fstat", Path: path, Kind: ErrPathAccess, Err: err}
	}
	e := Entry{
		Path:     path,
		Kind:     kindOfStat(uint32(st.Mode)),
		Identity: Identity{Dev: uint64(st.Dev), Ino: uint64(st.Ino)},
	}
	if e.Kind != KindRegular && e.Kind != KindDirectory {
		return e, nil
	}

	name, err := os.Readlink("/proc/self/fd/" + strconv.Itoa(fd))
	if err != nil {
		return Entry{}, &PathError{Context: "resolve:readlink", Path: path, Kind: ErrNameResolution, Err: err}
	}
	e.Path = name
	return e, nil
}
