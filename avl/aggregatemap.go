package avl

import (
	"fmt"

	"github.com/dendrascience/ufind/arena"
)

type aggregate struct {
	key, value arena.Index
}

// AggregateMap is an ordered map for multi-field keys. Keys and values are
// both copied into secondary arenas and keys are compared by reference.
type AggregateMap[K, V any] struct {
	t       *tree[aggregate]
	keys    *arena.Arena[K]
	values  *arena.Arena[V]
	compare func(a, b *K) int
}

// NewAggregateMap creates a map ordered by compare.
func NewAggregateMap[K, V any](compare func(a, b *K) int, opts ...Option) *AggregateMap[K, V] {
	o := buildOptions(opts)
	return &AggregateMap[K, V]{
		t:       newTree[aggregate](o),
		keys:    arena.New[K](o.arena...),
		values:  arena.New[V](o.arena...),
		compare: compare,
	}
}

func (m *AggregateMap[K, V]) probe(key *K) func(*aggregate) int {
	return func(e *aggregate) int {
		stored, _ := m.keys.Get(e.key)
		return m.compare(key, stored)
	}
}

// Insert copies key and value into the map unless key is already present.
func (m *AggregateMap[K, V]) Insert(key *K, value *V) (Handle, error) {
	h, _, err := m.InsertIfAbsent(key, value)
	return h, err
}

// InsertIfAbsent is Insert that also reports whether a new entry was created.
// A nil value stores the zero value.
func (m *AggregateMap[K, V]) InsertIfAbsent(key *K, value *V) (h Handle, inserted bool, err error) {
	return m.t.insert(m.probe(key), func() (aggregate, error) {
		if m.keys.Full() || m.values.Full() {
			return aggregate{}, ErrCapacityExhausted
		}
		var v V
		if value != nil {
			v = *value
		}
		ki, err := m.keys.Append(*key)
		if err != nil {
			return aggregate{}, err
		}
		vi, err := m.values.Append(v)
		if err != nil {
			return aggregate{}, err
		}
		return aggregate{key: ki, value: vi}, nil
	})
}

// Search returns the handle bound to key.
func (m *AggregateMap[K, V]) Search(key *K) (Handle, bool) {
	return m.t.search(m.probe(key))
}

// Key returns the stored key at h, or nil. The pointer is invalidated by the
// next insertion.
func (m *AggregateMap[K, V]) Key(h Handle) *K {
	e := m.t.payload(h)
	if e == nil {
		return nil
	}
	k, _ := m.keys.Get(e.key)
	return k
}

// Value returns the stored value at h for in-place mutation, or nil. The
// pointer is invalidated by the next insertion.
func (m *AggregateMap[K, V]) Value(h Handle) *V {
	e := m.t.payload(h)
	if e == nil {
		return nil
	}
	v, _ := m.values.Get(e.value)
	return v
}

// Len reports the number of entries.
func (m *AggregateMap[K, V]) Len() int { return m.t.len() }

// Walk visits every entry in insertion order.
func (m *AggregateMap[K, V]) Walk(yield func(*K, *V) bool) {
	m.t.walk(func(_ Handle, e *aggregate) bool {
		k, _ := m.keys.Get(e.key)
		v, _ := m.values.Get(e.value)
		return yield(k, v)
	})
}

// Describe renders the tree shape for diagnostics.
func (m *AggregateMap[K, V]) Describe() string {
	return m.t.describe(func(e *aggregate) string {
		k, _ := m.keys.Get(e.key)
		return fmt.Sprintf("%+v", *k)
	})
}

// Free releases all storage.
func (m *AggregateMap[K, V]) Free() {
	m.keys.Reset()
	m.values.Reset()
	m.t.free()
}
