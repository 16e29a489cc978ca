// Package avl implements grow-only ordered containers backed by arenas.
//
// Every container is an AVL tree whose nodes live in an arena.Arena and refer
// to each other by Handle rather than by pointer. Child links are mutated
// through slot references (the tree root field, or a node's left or right
// field) that are re-resolved against the arena on every use, so the engine
// never holds a pointer across an insertion that may relocate storage.
//
// Four variants share the engine:
//
//   - Set stores keys only.
//   - ScalarMap stores a value inline next to each key.
//   - ManagedMap stores values in a secondary arena. A constructor runs once
//     per key on first insertion and a destructor runs once per value when
//     the map is freed, which makes nested containers as values possible.
//   - AggregateMap stores both keys and values in secondary arenas and
//     compares keys by reference.
//
// Containers never remove entries. Insertion is idempotent: inserting an
// existing key returns the handle already bound to it. Running out of node
// capacity is reported as ErrCapacityExhausted, never as a zero handle.
//
// Containers are not safe for concurrent use.
package avl
