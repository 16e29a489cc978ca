package avl

import "github.com/dendrascience/ufind/arena"

// ErrCapacityExhausted is returned when a container cannot accept another
// node. It is the same error value the underlying arena reports.
var ErrCapacityExhausted = arena.ErrCapacityExhausted
