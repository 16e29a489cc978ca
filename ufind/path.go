package ufind

import (
	"strings"
	"syscall"
)

func joinPath(parent, name string) string {
	if strings.HasSuffix(parent, "/") {
		return parent + name
	}
	return parent + "/" + name
}

// childPath joins parent and name, refusing results longer than limit.
func childPath(parent, name string, limit int) (string, error) {
	p := joinPath(parent, name)
	if len(p) > limit {
		ctx := parent
		if !strings.HasSuffix(ctx, "/") {
			ctx += "/"
		}
		return "", &PathError{Context: ctx, Path: name, Kind: ErrPathTooLong, Err: syscall.ENAMETOOLONG}
	}
	return p, nil
}
