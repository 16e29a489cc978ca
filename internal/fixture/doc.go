// Package fixture builds directory trees for exercising ufind.
//
// Build writes a tree to disk with hard links, symbolic links back into the
// tree and links to other files, so a correct walk must deduplicate by
// identity. StaticFS is an in-memory read-only FUSE filesystem; mounting it
// under a tree puts a second device beneath the root.
package fixture
