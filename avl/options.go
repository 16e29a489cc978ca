package avl

import "github.com/dendrascience/ufind/arena"

type options struct {
	arena []arena.Option
}

// Option configures a container.
type Option func(*options)

// WithCapacity caps the number of entries a container holds. Inserting a new
// key beyond the cap fails with ErrCapacityExhausted.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.arena = append(o.arena, arena.WithMaxItems(n))
	}
}

// WithBlockSize sets the allocation granularity of the backing arenas.
func WithBlockSize(size int) Option {
	return func(o *options) {
		o.arena = append(o.arena, arena.WithBlockSize(size))
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
