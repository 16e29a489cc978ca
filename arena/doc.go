// Package arena provides a grow-only, fixed-item-size store addressed by
// integer index.
//
// An Arena keeps its items in one contiguous slice. Appending past the
// allocated capacity reallocates the slice in block-sized chunks, so any
// pointer obtained from Get is only valid until the next Append on the same
// arena. Indices stay valid for the life of the arena; items are never removed.
//
// Growth follows a simple rule: storage is always a multiple of the block
// size (64 KiB by default), and arenas of large items grow by
// itemSize << growthFactor bytes at a time so that reallocation stays
// amortized regardless of item size.
package arena
