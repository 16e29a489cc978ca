package avl

import (
	"cmp"
	"fmt"
)

// Set is an ordered set of keys.
type Set[K any] struct {
	t       *tree[K]
	compare func(a, b K) int
}

// NewSet creates a set ordered by the natural order of K.
func NewSet[K cmp.Ordered](opts ...Option) *Set[K] {
	return NewSetFunc(cmp.Compare[K], opts...)
}

// NewSetFunc creates a set ordered by compare, which must define a strict
// total order and return a negative, zero or positive result.
func NewSetFunc[K any](compare func(a, b K) int, opts ...Option) *Set[K] {
	return &Set[K]{
		t:       newTree[K](buildOptions(opts)),
		compare: compare,
	}
}

func (s *Set[K]) probe(key K) func(*K) int {
	return func(k *K) int { return s.compare(key, *k) }
}

// Insert adds key and returns its handle. Inserting a key that is already
// present returns the existing handle and changes nothing.
func (s *Set[K]) Insert(key K) (Handle, error) {
	h, _, err := s.InsertIfAbsent(key)
	return h, err
}

// InsertIfAbsent adds key if it is not present. inserted reports whether a
// new entry was created.
func (s *Set[K]) InsertIfAbsent(key K) (h Handle, inserted bool, err error) {
	return s.t.insert(s.probe(key), func() (K, error) { return key, nil })
}

// Search returns the handle bound to key.
func (s *Set[K]) Search(key K) (Handle, bool) {
	return s.t.search(s.probe(key))
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.Search(key)
	return ok
}

// Key returns the key stored at h.
func (s *Set[K]) Key(h Handle) (K, bool) {
	if k := s.t.payload(h); k != nil {
		return *k, true
	}
	var zero K
	return zero, false
}

// Len reports the number of keys.
func (s *Set[K]) Len() int { return s.t.len() }

// Height reports the height of the tree, zero when empty.
func (s *Set[K]) Height() int { return int(s.t.height(s.t.root)) }

// Walk visits every key in insertion order, not in key order.
func (s *Set[K]) Walk(yield func(Handle, K) bool) {
	s.t.walk(func(h Handle, k *K) bool { return yield(h, *k) })
}

// Describe renders the tree shape for diagnostics.
func (s *Set[K]) Describe() string {
	return s.t.describe(func(k *K) string { return fmt.Sprint(*k) })
}

// Free releases all storage. The set is empty and usable afterwards.
func (s *Set[K]) Free() { s.t.free() }
