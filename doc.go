// Package main provides the ufind command-line interface.
//
// ufind lists every regular file under the given paths exactly once. Files
// are identified by device and inode, so hard links and symbolic link cycles
// never produce a second entry for the same file.
//
//	ufind [-z] [-q] [-v...] [-x] [-c] [--strategy depth|waves] <path> [..<path>]
//
// Output is one canonical absolute path per file, terminated by a newline or,
// with -z, by a NUL byte. Per-path failures are reported on stderr and the
// walk continues; the exit status is only non-zero for a malformed invocation
// or when writing the output fails.
package main
