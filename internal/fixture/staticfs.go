//go:build linux || freebsd

package fixture

import (
	"context"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"
	"sync"
	"syscall"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
)

// StaticFS is a read-only FUSE filesystem whose contents are fixed before
// it is served. The same node added under two names is a hard link.
type StaticFS struct {
	mu        sync.RWMutex
	root      *staticDir
	lastInode uint64
}

// NewStaticFS returns a filesystem holding only an empty root directory.
func NewStaticFS() *StaticFS {
	s := &StaticFS{}
	s.root = &staticDir{fs: s, inode: s.nextInode(), children: make(map[string]fs.Node)}
	return s
}

func (s *StaticFS) nextInode() uint64 {
	s.lastInode++
	return s.lastInode
}

// Root returns the root directory node
func (s *StaticFS) Root() (fs.Node, error) {
	return s.root, nil
}

// AddFile creates a regular file at p, creating parent directories.
func (s *StaticFS) AddFile(p string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bind(p, &staticFile{inode: s.nextInode(), data: data})
}

// AddDir creates a directory at p, creating parent directories.
func (s *StaticFS) AddDir(p string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.mkdirAll(strings.Trim(p, "/"))
	return err
}

// Link binds the node at existing to the new name p as well.
func (s *StaticFS) Link(existing, p string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.lookup(existing)
	if err != nil {
		return err
	}
	if _, ok := n.(*staticDir); ok {
		return fmt.Errorf("linking %s: %w", existing, syscall.EPERM)
	}
	if f, ok := n.(*staticFile); ok {
		f.nlink++
	}
	return s.bind(p, n)
}

// Symlink creates a symbolic link at p pointing to target.
func (s *StaticFS) Symlink(target, p string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bind(p, &staticLink{inode: s.nextInode(), target: target})
}

func (s *StaticFS) lookup(p string) (fs.Node, error) {
	var n fs.Node = s.root
	for _, name := range split(p) {
		d, ok := n.(*staticDir)
		if !ok {
			return nil, fmt.Errorf("%s: %w", p, ErrNotDirectory)
		}
		if n, ok = d.children[name]; !ok {
			return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
		}
	}
	return n, nil
}

func (s *StaticFS) mkdirAll(p string) (*staticDir, error) {
	d := s.root
	for _, name := range split(p) {
		next, ok := d.children[name]
		if !ok {
			sub := &staticDir{fs: s, inode: s.nextInode(), children: make(map[string]fs.Node)}
			d.add(name, sub)
			d = sub
			continue
		}
		if d, ok = next.(*staticDir); !ok {
			return nil, fmt.Errorf("%s: %w", p, ErrNotDirectory)
		}
	}
	return d, nil
}

func (s *StaticFS) bind(p string, n fs.Node) error {
	p = strings.Trim(p, "/")
	if p == "" {
		return fmt.Errorf("binding root: %w", ErrExists)
	}
	dir, name := path.Split(p)
	d, err := s.mkdirAll(dir)
	if err != nil {
		return err
	}
	if _, ok := d.children[name]; ok {
		return fmt.Errorf("%s: %w", p, ErrExists)
	}
	d.add(name, n)
	return nil
}

func split(p string) []string {
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// BuildStatic fills a StaticFS with the tree Build would write.
func BuildStatic(l Layout) (*StaticFS, *Tree, error) {
	t, err := plan("/", l)
	if err != nil {
		return nil, nil, err
	}
	s := NewStaticFS()
	for _, b := range t.Buckets {
		if err := s.AddDir(b); err != nil {
			return nil, nil, err
		}
	}
	for i, name := range t.Files {
		if err := s.AddFile(name, []byte(t.ids[i]+"\n")); err != nil {
			return nil, nil, err
		}
	}
	for _, name := range t.HardLinks {
		if err := s.Link(t.targets[name], name); err != nil {
			return nil, nil, err
		}
	}
	for _, name := range slices.Concat(t.DirLinks, t.FileLinks) {
		rel, err := relTarget(t.targets[name], name)
		if err != nil {
			return nil, nil, err
		}
		if err := s.Symlink(rel, name); err != nil {
			return nil, nil, err
		}
	}
	return s, t, nil
}

// staticDir implements both Node and Handle for directories
type staticDir struct {
	fs       *StaticFS
	inode    uint64
	names    []string
	children map[string]fs.Node
}

func (d *staticDir) add(name string, n fs.Node) {
	d.names = append(d.names, name)
	d.children[name] = n
}

// Attr returns directory attributes
func (d *staticDir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = d.inode
	a.Mode = os.ModeDir | 0o555
	a.Nlink = 2
	return nil
}

// Lookup resolves a child name to its node
func (d *staticDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	d.fs.mu.RLock()
	defer d.fs.mu.RUnlock()
	if n, ok := d.children[name]; ok {
		return n, nil
	}
	return nil, syscall.ENOENT
}

// ReadDirAll lists children in the order they were added
func (d *staticDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	d.fs.mu.RLock()
	defer d.fs.mu.RUnlock()
	dirents := make([]fuse.Dirent, 0, len(d.names))
	for _, name := range d.names {
		de := fuse.Dirent{Name: name}
		switch n := d.children[name].(type) {
		case *staticDir:
			de.Inode, de.Type = n.inode, fuse.DT_Dir
		case *staticFile:
			de.Inode, de.Type = n.inode, fuse.DT_File
		case *staticLink:
			de.Inode, de.Type = n.inode, fuse.DT_Link
		}
		dirents = append(dirents, de)
	}
	return dirents, nil
}

type staticFile struct {
	inode uint64
	nlink uint32
	data  []byte
}

func (f *staticFile) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = f.inode
	a.Mode = 0o444
	a.Size = uint64(len(f.data))
	a.Nlink = f.nlink + 1
	return nil
}

func (f *staticFile) ReadAll(ctx context.Context) ([]byte, error) {
	return f.data, nil
}

type staticLink struct {
	inode  uint64
	target string
}

func (l *staticLink) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = l.inode
	a.Mode = os.ModeSymlink | 0o777
	a.Size = uint64(len(l.target))
	return nil
}

func (l *staticLink) Readlink(ctx context.Context, req *fuse.ReadlinkRequest) (string, error) {
	return l.target, nil
}

// Mounted is a StaticFS being served.
type Mounted struct {
	Dir  string
	conn *fuse.Conn
	done chan error
}

// Serve mounts s at mountpoint and serves it in the background until Close.
func Serve(mountpoint string, s *StaticFS) (*Mounted, error) {
	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("ufind-fixture"),
		fuse.Subtype("ufindfs"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return nil, err
	}
	m := &Mounted{Dir: mountpoint, conn: c, done: make(chan error, 1)}
	go func() {
		m.done <- fs.Serve(c, s)
	}()
	return m, nil
}

// Close unmounts the filesystem and waits for serving to stop.
func (m *Mounted) Close() error {
	if err := fuse.Unmount(m.Dir); err != nil {
		return err
	}
	err := <-m.done
	m.conn.Close()
	return err
}

// Mount serves s at mountpoint until ctx is done or the filesystem is
// unmounted externally.
func Mount(ctx context.Context, mountpoint string, s *StaticFS) error {
	m, err := Serve(mountpoint, s)
	if err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return m.Close()
	case err := <-m.done:
		m.conn.Close()
		return err
	}
}
