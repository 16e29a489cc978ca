package ufind

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/dendrascience/ufind/avl"
)

// visited holds the inode numbers seen on one device.
type visited struct {
	dirs  *avl.Set[uint64]
	files *avl.Set[uint64]
}

// Registry records which directories and files have been visited, keyed by
// device and then by inode.
type Registry struct {
	devices *avl.ManagedMap[uint64, visited]
}

// NewRegistry creates an empty registry. The options apply to the device map
// and to every per-device set.
func NewRegistry(opts ...avl.Option) *Registry {
	lc := avl.Lifecycle[visited]{
		Construct: func(v *visited) error {
			v.dirs = avl.NewSet[uint64](opts...)
			v.files = avl.NewSet[uint64](opts...)
			return nil
		},
		Destruct: func(v *visited) error {
			v.dirs.Free()
			v.files.Free()
			return nil
		},
	}
	return &Registry{devices: avl.NewManagedMap[uint64](lc, opts...)}
}

// MarkDir records a directory and reports whether it was not seen before.
func (r *Registry) MarkDir(id Identity) (bool, error) {
	return r.mark(id, func(v *visited) *avl.Set[uint64] { return v.dirs })
}

// MarkFile records a file and reports whether it was not seen before.
func (r *Registry) MarkFile(id Identity) (bool, error) {
	return r.mark(id, func(v *visited) *avl.Set[uint64] { return v.files })
}

func (r *Registry) mark(id Identity, pick func(*visited) *avl.Set[uint64]) (bool, error) {
	h, err := r.devices.Insert(id.Dev)
	if err != nil {
		return false, err
	}
	set := pick(r.devices.Value(h))
	_, inserted, err := set.InsertIfAbsent(id.Ino)
	return inserted, err
}

// Devices reports how many distinct devices have been seen.
func (r *Registry) Devices() int { return r.devices.Len() }

// Counts reports the number of directories and files recorded on dev.
func (r *Registry) Counts(dev uint64) (dirs, files int) {
	h, ok := r.devices.Search(dev)
	if !ok {
		return 0, 0
	}
	v := r.devices.Value(h)
	return v.dirs.Len(), v.files.Len()
}

// Describe renders the per-device counts as a tree.
func (r *Registry) Describe() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("registry (%d devices)", r.devices.Len()))
	for dev, v := range r.devices.Walk {
		b := tree.AddBranch(fmt.Sprintf("device %d:%d", devMajor(dev), devMinor(dev)))
		b.AddNode(fmt.Sprintf("directories: %d (height %d)", v.dirs.Len(), v.dirs.Height()))
		b.AddNode(fmt.Sprintf("files: %d (height %d)", v.files.Len(), v.files.Height()))
	}
	return tree.String()
}

// Free releases every per-device set.
func (r *Registry) Free() error { return r.devices.Free() }

// devMajor and devMinor split a Linux dev_t. Other platforms get a
// stable rendering.
func devMajor(dev uint64) uint64 { return (dev>>8)&0xfff | (dev>>32)&^0xfff }

func devMinor(dev uint64) uint64 { return dev&0xff | (dev>>12)&^0xff }
