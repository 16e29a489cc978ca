// Package ufind enumerates the files under a set of roots exactly once.
//
// A Finder walks each argument, follows symbolic links, and prints the
// canonical path of every regular file whose (device, inode) identity it has
// not printed before. Hard links to an already printed file are suppressed,
// and directories reached a second time through a symbolic link are not
// entered again, so link cycles terminate. With OneFileSystem set, entries on
// a different device than the one an argument started on are skipped.
//
// The visited sets are per-device avl sets held in a Registry owned by the
// Finder; nothing is kept in package state, so independent Finders can run
// side by side in one process. A single Finder is not safe for concurrent use.
//
// Failures are confined to the path they occur on: they are logged and the
// walk moves on to the next sibling or argument.
package ufind
