package ufind

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/dendrascience/ufind/avl"
)

// Sentinel errors classifying per-path failures. A *PathError matches its
// class and its underlying cause with errors.Is.
var (
	// Opening a path or reading its identity failed.
	ErrPathAccess = errors.New("path access failed")
	// Opening or reading a directory failed.
	ErrEnumeration = errors.New("directory enumeration failed")
	// Canonicalizing an opened path failed.
	ErrNameResolution = errors.New("name resolution failed")
	// A constructed child path exceeds the configured maximum.
	ErrPathTooLong = errors.New("path too long")
	// The entry is neither a regular file, a directory nor a symbolic link.
	ErrUnsupportedKind = errors.New("unsupported entry kind")
	// The visited registry cannot record another identity.
	ErrCapacityExhausted = avl.ErrCapacityExhausted
)

// PathError records a failure on a single path.
type PathError struct {
	Context string // where it happened, e.g. "resolve:open"
	Path    string
	Kind    error // one of the sentinel errors above
	Err     error // underlying cause, usually a syscall.Errno
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: path '%s' error %d: %s", e.Context, e.Path, e.Code(), e.message())
}

func (e *PathError) Unwrap() []error { return []error{e.Kind, e.Err} }

// Code returns the errno behind the failure, or 0 if there is none.
func (e *PathError) Code() int {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return int(errno)
	}
	return 0
}

func (e *PathError) message() string {
	var errno syscall.Errno
	switch {
	case errors.As(e.Err, &errno):
		return errno.Error()
	case e.Err != nil:
		return e.Err.Error()
	case e.Kind != nil:
		return e.Kind.Error()
	}
	return "unknown error"
}
