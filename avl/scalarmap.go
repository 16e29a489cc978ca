package avl

import (
	"cmp"
	"fmt"
)

type entry[K, V any] struct {
	key   K
	value V
}

// ScalarMap is an ordered map storing each value inline next to its key.
type ScalarMap[K, V any] struct {
	t       *tree[entry[K, V]]
	compare func(a, b K) int
}

// NewScalarMap creates a map ordered by the natural order of K.
func NewScalarMap[K cmp.Ordered, V any](opts ...Option) *ScalarMap[K, V] {
	return NewScalarMapFunc[K, V](cmp.Compare[K], opts...)
}

// NewScalarMapFunc creates a map ordered by compare.
func NewScalarMapFunc[K, V any](compare func(a, b K) int, opts ...Option) *ScalarMap[K, V] {
	return &ScalarMap[K, V]{
		t:       newTree[entry[K, V]](buildOptions(opts)),
		compare: compare,
	}
}

func (m *ScalarMap[K, V]) probe(key K) func(*entry[K, V]) int {
	return func(e *entry[K, V]) int { return m.compare(key, e.key) }
}

// Insert binds value to key unless key is already present, in which case the
// existing handle is returned and the stored value is left alone.
func (m *ScalarMap[K, V]) Insert(key K, value V) (Handle, error) {
	h, _, err := m.InsertIfAbsent(key, value)
	return h, err
}

// InsertIfAbsent is Insert that also reports whether a new entry was created.
func (m *ScalarMap[K, V]) InsertIfAbsent(key K, value V) (h Handle, inserted bool, err error) {
	return m.t.insert(m.probe(key), func() (entry[K, V], error) {
		return entry[K, V]{key: key, value: value}, nil
	})
}

// Search returns the handle bound to key.
func (m *ScalarMap[K, V]) Search(key K) (Handle, bool) {
	return m.t.search(m.probe(key))
}

// Get returns the value bound to key.
func (m *ScalarMap[K, V]) Get(key K) (V, bool) {
	h, ok := m.Search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.Value(h)
}

// Key returns the key stored at h.
func (m *ScalarMap[K, V]) Key(h Handle) (K, bool) {
	if e := m.t.payload(h); e != nil {
		return e.key, true
	}
	var zero K
	return zero, false
}

// Value returns the value stored at h.
func (m *ScalarMap[K, V]) Value(h Handle) (V, bool) {
	if e := m.t.payload(h); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// SetValue overwrites the value stored at h. It reports false when h names
// no entry.
func (m *ScalarMap[K, V]) SetValue(h Handle, value V) bool {
	e := m.t.payload(h)
	if e == nil {
		return false
	}
	e.value = value
	return true
}

// Len reports the number of entries.
func (m *ScalarMap[K, V]) Len() int { return m.t.len() }

// Walk visits every entry in insertion order.
func (m *ScalarMap[K, V]) Walk(yield func(K, V) bool) {
	m.t.walk(func(_ Handle, e *entry[K, V]) bool { return yield(e.key, e.value) })
}

// Describe renders the tree shape for diagnostics.
func (m *ScalarMap[K, V]) Describe() string {
	return m.t.describe(func(e *entry[K, V]) string { return fmt.Sprintf("%v=%v", e.key, e.value) })
}

// Free releases all storage.
func (m *ScalarMap[K, V]) Free() { m.t.free() }
