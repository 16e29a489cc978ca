package ufind

import (
	"path"
	"syscall"
)

type memNode struct {
	kind     Kind
	id       Identity
	target   string
	children []string
}

// memFS is an in-memory Filesystem. Symbolic link targets must be absolute
// paths of other nodes.
type memFS struct {
	nodes   map[string]*memNode
	readErr map[string]error
	// failAfter makes ReadDir fail with EIO after listing that many children.
	failAfter map[string]int
}

func newMemFS() *memFS {
	return &memFS{
		nodes:     make(map[string]*memNode),
		readErr:   make(map[string]error),
		failAfter: make(map[string]int),
	}
}

func (m *memFS) add(p string, kind Kind, dev, ino uint64) *memFS {
	m.nodes[p] = &memNode{kind: kind, id: Identity{Dev: dev, Ino: ino}}
	if parent, ok := m.nodes[path.Dir(p)]; ok && p != "/" {
		parent.children = append(parent.children, path.Base(p))
	}
	return m
}

func (m *memFS) dir(p string, dev, ino uint64) *memFS  { return m.add(p, KindDirectory, dev, ino) }
func (m *memFS) file(p string, dev, ino uint64) *memFS { return m.add(p, KindRegular, dev, ino) }

func (m *memFS) symlink(p, target string) *memFS {
	m.add(p, KindSymlink, 0, 0)
	m.nodes[p].target = target
	return m
}

func (m *memFS) Resolve(p string) (Entry, error) {
	cur := p
	for range 40 {
		n, ok := m.nodes[cur]
		if !ok {
			return Entry{}, &PathError{Context: "resolve:open", Path: p, Kind: ErrPathAccess, Err: syscall.ENOENT}
		}
		if n.kind == KindSymlink {
			cur = n.target
			continue
		}
		e := Entry{Path: p, Kind: n.kind, Identity: n.id}
		if n.kind == KindRegular || n.kind == KindDirectory {
			e.Path = cur
		}
		return e, nil
	}
	return Entry{}, &PathError{Context: "resolve:open", Path: p, Kind: ErrPathAccess, Err: syscall.ELOOP}
}

func (m *memFS) ReadDir(dir string) ([]Entry, error) {
	if err := m.readErr[dir]; err != nil {
		return nil, &PathError{Context: "enumerate:open", Path: dir, Kind: ErrEnumeration, Err: err}
	}
	n, ok := m.nodes[dir]
	if !ok || n.kind != KindDirectory {
		return nil, &PathError{Context: "enumerate:open", Path: dir, Kind: ErrEnumeration, Err: syscall.ENOTDIR}
	}
	entries := make([]Entry, 0, len(n.children))
	for i, name := range n.children {
		if limit, ok := m.failAfter[dir]; ok && i == limit {
			return entries, &PathError{Context: "enumerate:readdir", Path: dir, Kind: ErrEnumeration, Err: syscall.EIO}
		}
		c := m.nodes[joinPath(dir, name)]
		e := Entry{Name: name, Kind: c.kind}
		if c.kind == KindRegular || c.kind == KindDirectory {
			e.Identity = c.id
		}
		entries = append(entries, e)
	}
	return entries, nil
}
