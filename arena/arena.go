package arena

import "unsafe"

// Index addresses an item by its zero-based position in an Arena.
type Index uint32

// Arena is a grow-only store of fixed-size items.
type Arena[T any] struct {
	items    []T
	itemSize int
	chunk    int
	cfg      config
}

// New creates an empty arena. No storage is allocated until the first Append.
func New[T any](opts ...Option) *Arena[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		// zero-width items still occupy one slot each for capacity accounting
		size = 1
	}
	return &Arena[T]{
		itemSize: size,
		chunk:    growthChunk(size, cfg),
		cfg:      cfg,
	}
}

// ItemSize reports the size in bytes of a single item.
func (a *Arena[T]) ItemSize() int { return a.itemSize }

// Len reports the number of items in use.
func (a *Arena[T]) Len() int { return len(a.items) }

// Cap reports the number of items that fit without reallocating.
func (a *Arena[T]) Cap() int { return cap(a.items) }

// Append stores item at the end of the arena and returns its index.
// Pointers previously returned by Get may be invalidated.
func (a *Arena[T]) Append(item T) (Index, error) {
	if len(a.items) == cap(a.items) {
		if err := a.grow(); err != nil {
			return 0, err
		}
	}
	a.items = append(a.items, item)
	return Index(len(a.items) - 1), nil
}

// AppendZero appends the zero value of T.
func (a *Arena[T]) AppendZero() (Index, error) {
	var zero T
	return a.Append(zero)
}

// Get returns a pointer to the item at i. The pointer must not be retained
// across an Append on the same arena.
func (a *Arena[T]) Get(i Index) (*T, bool) {
	if int(i) >= len(a.items) {
		return nil, false
	}
	return &a.items[i], true
}

// At returns a copy of the item at i, or the zero value when i is out of range.
func (a *Arena[T]) At(i Index) T {
	if int(i) >= len(a.items) {
		var zero T
		return zero
	}
	return a.items[i]
}

// Set overwrites the item at i in place. It reports false and does nothing
// when i is out of range.
func (a *Arena[T]) Set(i Index, item T) bool {
	if int(i) >= len(a.items) {
		return false
	}
	a.items[i] = item
	return true
}

// All iterates over the items in insertion order.
func (a *Arena[T]) All(yield func(Index, *T) bool) {
	for i := range a.items {
		if !yield(Index(i), &a.items[i]) {
			return
		}
	}
}

// Full reports whether the next Append would fail with ErrCapacityExhausted.
func (a *Arena[T]) Full() bool { return len(a.items) >= a.cfg.maxItems }

// Clear drops all items but keeps the storage for reuse.
func (a *Arena[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
}

// Reset drops all items and releases the storage.
func (a *Arena[T]) Reset() {
	clear(a.items)
	a.items = nil
}

func (a *Arena[T]) grow() error {
	used := len(a.items)
	if used >= a.cfg.maxItems {
		return ErrCapacityExhausted
	}

	oldBytes := alignUp(cap(a.items)*a.itemSize, a.cfg.blockSize)
	newBytes := alignUp(oldBytes+a.chunk, a.cfg.blockSize)
	n := newBytes / a.itemSize
	if n <= used {
		n = used + 1
	}
	if n > a.cfg.maxItems {
		n = a.cfg.maxItems
	}

	items := make([]T, used, n)
	copy(items, a.items)
	a.items = items
	return nil
}
