package arena

import "errors"

var (
	// ErrCapacityExhausted is returned by Append when the arena has reached its
	// configured item ceiling and cannot accept another item.
	ErrCapacityExhausted = errors.New("arena capacity exhausted")
)
