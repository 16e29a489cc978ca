package fixture

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"github.com/taigrr/colorhash"
	"golang.org/x/sync/errgroup"
)

// Layout describes a tree for Build.
type Layout struct {
	Files     int // distinct regular files
	Buckets   int // directories the files are spread over
	HardLinks int // extra names for existing files
	DirLinks  int // symbolic links to the root or another bucket
	FileLinks int // symbolic links to existing files
	Workers   int // concurrent writers
	Seed      uint64
}

// DefaultLayout is the tree the seed tool writes when no flags are given.
func DefaultLayout() Layout {
	return Layout{
		Files:     1000,
		Buckets:   50,
		HardLinks: 100,
		DirLinks:  10,
		FileLinks: 50,
		Workers:   8,
	}
}

// Tree lists what was built, relative to Root.
type Tree struct {
	Root      string
	Buckets   []string
	Files     []string // first name of every distinct file
	HardLinks []string
	DirLinks  []string
	FileLinks []string

	ids     []string
	targets map[string]string // link name to target, both relative to Root
}

// Unique is the number of distinct files in the tree.
func (t *Tree) Unique() int { return len(t.Files) }

// Target returns what the hard or symbolic link at name points to.
func (t *Tree) Target(name string) (string, bool) {
	target, ok := t.targets[name]
	return target, ok
}

// plan names everything a layout produces without touching any filesystem.
func plan(root string, l Layout) (*Tree, error) {
	if l.Files <= 0 {
		return nil, ErrEmptyLayout
	}
	l.Buckets = max(l.Buckets, 1)
	rng := rand.New(rand.NewPCG(l.Seed, uint64(l.Files)))

	t := &Tree{
		Root:    root,
		Buckets: make([]string, l.Buckets),
		Files:   make([]string, l.Files),
		ids:     make([]string, l.Files),
		targets: make(map[string]string),
	}
	for i := range t.Buckets {
		t.Buckets[i] = bucketName(i)
	}
	for i := range t.ids {
		t.ids[i] = uuid.NewString()
		b := colorhash.HashString(t.ids[i]) % l.Buckets
		if b < 0 {
			b = -b
		}
		t.Files[i] = path.Join(t.Buckets[b], t.ids[i]+".txt")
	}

	pickBucket := func() string { return t.Buckets[rng.IntN(len(t.Buckets))] }
	pickFile := func() string { return t.Files[rng.IntN(len(t.Files))] }

	for i := range l.HardLinks {
		name := path.Join(pickBucket(), fmt.Sprintf("link-%04d.txt", i))
		t.HardLinks = append(t.HardLinks, name)
		t.targets[name] = pickFile()
	}
	for i := range l.DirLinks {
		name := path.Join(pickBucket(), fmt.Sprintf("loop-%04d", i))
		t.DirLinks = append(t.DirLinks, name)
		t.targets[name] = "."
		if i%2 == 1 {
			t.targets[name] = pickBucket()
		}
	}
	for i := range l.FileLinks {
		name := path.Join(pickBucket(), fmt.Sprintf("alias-%04d.txt", i))
		t.FileLinks = append(t.FileLinks, name)
		t.targets[name] = pickFile()
	}
	return t, nil
}

// Build writes a tree described by l under root, creating root if needed.
func Build(root string, l Layout) (*Tree, error) {
	t, err := plan(root, l)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating root: %w", err)
	}
	fsys := osfs.New(root)

	for _, b := range t.Buckets {
		if err := fsys.MkdirAll(b, 0o755); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", b, err)
		}
	}

	var eg errgroup.Group
	eg.SetLimit(max(l.Workers, 1))
	for i, name := range t.Files {
		eg.Go(func() error {
			return writeFile(fsys, name, t.ids[i])
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, name := range t.HardLinks {
		src := t.targets[name]
		if err := os.Link(filepath.Join(root, src), filepath.Join(root, name)); err != nil {
			return nil, fmt.Errorf("linking %s to %s: %w", name, src, err)
		}
	}
	for _, name := range slices.Concat(t.DirLinks, t.FileLinks) {
		rel, err := relTarget(t.targets[name], name)
		if err != nil {
			return nil, err
		}
		if err := fsys.Symlink(rel, name); err != nil {
			return nil, fmt.Errorf("symlinking %s to %s: %w", name, rel, err)
		}
	}
	return t, nil
}

// bucketName spreads buckets over two levels of directories.
func bucketName(i int) string {
	return fmt.Sprintf("%02d/%03d", i%10, i)
}

func writeFile(fsys billy.Filesystem, name, id string) error {
	if err := util.WriteFile(fsys, name, []byte(id+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// relTarget expresses target relative to the directory holding the link at
// name. Both are relative to the tree root.
func relTarget(target, name string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(filepath.FromSlash(name)), filepath.FromSlash(target))
	if err != nil {
		return "", fmt.Errorf("relativizing %s: %w", target, err)
	}
	return filepath.ToSlash(filepath.Clean(rel)), nil
}
