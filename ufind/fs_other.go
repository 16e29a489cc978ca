//go:build !unix

package ufind

import "errors"

type osFS struct{}

// OS returns a Filesystem that fails every call; device and inode numbers
// are not available on this platform.
func OS() Filesystem { return osFS{} }

func (osFS) Resolve(path string) (Entry, error) {
	return Entry{}, &PathError{Context: "resolve:open", Path: path, Kind: ErrPathAccess, Err: errors.ErrUnsupported}
}

func (osFS) ReadDir(dir string) ([]Entry, error) {
	return nil, &PathError{Context: "enumerate:open", Path: dir, Kind: ErrEnumeration, Err: errors.ErrUnsupported}
}
