package avl

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/dendrascience/ufind/arena"
)

// Lifecycle holds the callbacks a ManagedMap runs on its values. Either may
// be nil.
type Lifecycle[V any] struct {
	// Construct initializes a value the first time its key is inserted.
	Construct func(*V) error
	// Destruct releases a value when the map is freed.
	Destruct func(*V) error
}

type managed[K any] struct {
	key   K
	value arena.Index
}

// ManagedMap is an ordered map whose values live in a secondary arena and are
// created and torn down through a Lifecycle.
type ManagedMap[K, V any] struct {
	t         *tree[managed[K]]
	values    *arena.Arena[V]
	compare   func(a, b K) int
	lifecycle Lifecycle[V]
}

// NewManagedMap creates a map ordered by the natural order of K.
func NewManagedMap[K cmp.Ordered, V any](lc Lifecycle[V], opts ...Option) *ManagedMap[K, V] {
	return NewManagedMapFunc(cmp.Compare[K], lc, opts...)
}

// NewManagedMapFunc creates a map ordered by compare.
func NewManagedMapFunc[K, V any](compare func(a, b K) int, lc Lifecycle[V], opts ...Option) *ManagedMap[K, V] {
	o := buildOptions(opts)
	return &ManagedMap[K, V]{
		t:         newTree[managed[K]](o),
		values:    arena.New[V](o.arena...),
		compare:   compare,
		lifecycle: lc,
	}
}

func (m *ManagedMap[K, V]) probe(key K) func(*managed[K]) int {
	return func(e *managed[K]) int { return m.compare(key, e.key) }
}

// Insert returns the handle bound to key, constructing a new value first if
// key is not present yet. A constructor error aborts the insertion.
func (m *ManagedMap[K, V]) Insert(key K) (Handle, error) {
	h, _, err := m.InsertIfAbsent(key)
	return h, err
}

// InsertIfAbsent is Insert that also reports whether a new entry was created.
func (m *ManagedMap[K, V]) InsertIfAbsent(key K) (h Handle, inserted bool, err error) {
	return m.t.insert(m.probe(key), func() (managed[K], error) {
		if m.values.Full() {
			return managed[K]{}, ErrCapacityExhausted
		}
		var v V
		if m.lifecycle.Construct != nil {
			if err := m.lifecycle.Construct(&v); err != nil {
				return managed[K]{}, fmt.Errorf("constructing value for %v: %w", key, err)
			}
		}
		idx, err := m.values.Append(v)
		if err != nil {
			if m.lifecycle.Destruct != nil {
				err = errors.Join(err, m.lifecycle.Destruct(&v))
			}
			return managed[K]{}, err
		}
		return managed[K]{key: key, value: idx}, nil
	})
}

// Search returns the handle bound to key.
func (m *ManagedMap[K, V]) Search(key K) (Handle, bool) {
	return m.t.search(m.probe(key))
}

// Key returns the key stored at h.
func (m *ManagedMap[K, V]) Key(h Handle) (K, bool) {
	if e := m.t.payload(h); e != nil {
		return e.key, true
	}
	var zero K
	return zero, false
}

// Value returns the value stored at h for in-place mutation, or nil when h
// names no entry. The pointer is invalidated by the next insertion.
func (m *ManagedMap[K, V]) Value(h Handle) *V {
	e := m.t.payload(h)
	if e == nil {
		return nil
	}
	v, _ := m.values.Get(e.value)
	return v
}

// Len reports the number of entries.
func (m *ManagedMap[K, V]) Len() int { return m.t.len() }

// Walk visits every entry in insertion order.
func (m *ManagedMap[K, V]) Walk(yield func(K, *V) bool) {
	m.t.walk(func(_ Handle, e *managed[K]) bool {
		v, _ := m.values.Get(e.value)
		return yield(e.key, v)
	})
}

// Describe renders the tree shape for diagnostics.
func (m *ManagedMap[K, V]) Describe() string {
	return m.t.describe(func(e *managed[K]) string { return fmt.Sprint(e.key) })
}

// Free runs the destructor on every stored value exactly once and releases
// all storage. Destructor errors are joined and returned; every value is
// visited regardless.
func (m *ManagedMap[K, V]) Free() error {
	var errs []error
	if m.lifecycle.Destruct != nil {
		for _, v := range m.values.All {
			if err := m.lifecycle.Destruct(v); err != nil {
				errs = append(errs, err)
			}
		}
	}
	m.values.Reset()
	m.t.free()
	return errors.Join(errs...)
}
