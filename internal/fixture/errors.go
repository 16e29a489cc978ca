package fixture

import "errors"

var (
	// ErrEmptyLayout is returned when a layout asks for no files.
	ErrEmptyLayout = errors.New("layout has no files")
	// ErrNotFound is returned when a path does not exist in a StaticFS.
	ErrNotFound = errors.New("no such entry")
	// ErrExists is returned when a path is added twice to a StaticFS.
	ErrExists = errors.New("entry already exists")
	// ErrNotDirectory is returned when a path component is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
