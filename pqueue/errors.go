package pqueue

import "errors"

// Sentinel errors returned by every Interface implementation in this
// package.
var (
	// ErrEmpty is returned by PeekMin/ExtractMin when the queue holds no
	// entries.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrInvalidArgument is returned by DecreaseKey for a nil or
	// already-extracted handle, or a new key greater than the entry's
	// current key, and by Merge when the two operands are not the same
	// concrete heap variant.
	ErrInvalidArgument = errors.New("pqueue: invalid argument")
)
