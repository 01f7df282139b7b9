package pqueue

// Handle is an opaque reference returned by Insert and accepted by
// DecreaseKey. Its validity begins at Insert and ends at the ExtractMin
// that removes the corresponding entry; presenting a stale handle to
// DecreaseKey fails with ErrInvalidArgument rather than corrupting the
// heap.
//
// Handle is a marker interface: each concrete heap defines its own
// unexported handle type satisfying it, so a handle minted by one heap
// variant can never be silently accepted by another.
type Handle interface {
	isHandle()
}

// Interface is the polymorphic addressable-priority-queue capability
// implemented by BinaryHeap, FibonacciHeap and HollowHeap.
//
// Complexity is amortised per-operation as noted; see each concrete
// type's doc comment for the exact bound and the invariants it
// maintains.
type Interface interface {
	// Insert adds (key, value) to the queue and returns a handle that can
	// later be presented to DecreaseKey. The returned handle is never nil.
	Insert(key int64, value int32) Handle

	// PeekMin returns the (key, value) pair with the minimum key without
	// removing it. It returns ErrEmpty if the queue holds no entries.
	PeekMin() (int64, int32, error)

	// ExtractMin removes and returns the (key, value) pair with the
	// minimum key. It returns ErrEmpty if the queue holds no entries.
	ExtractMin() (int64, int32, error)

	// DecreaseKey lowers the key of the entry named by h to newKey. It
	// returns ErrInvalidArgument if h is nil, h belongs to a different
	// heap variant, h's entry has already been extracted, or newKey is
	// greater than the entry's current key. A rejected call never mutates
	// the queue. BinaryHeap also rejects a handle that names no entry of
	// the receiver; FibonacciHeap and HollowHeap do not check that a handle
	// of their own type was issued by the receiver.
	DecreaseKey(h Handle, newKey int64) error

	// Merge destructively absorbs other's entries into the receiver;
	// other is left empty. It returns ErrInvalidArgument if other is not
	// the same concrete type as the receiver.
	Merge(other Interface) error

	// IsEmpty reports whether the queue holds zero entries.
	IsEmpty() bool
}

// StatsProvider is implemented by every concrete heap in this package,
// exposing its structural peak counters without widening Interface (which
// must stay a pure capability contract that a hypothetical fourth
// implementation could satisfy without any bookkeeping of its own).
type StatsProvider interface {
	StructureStats() StructureStats
}
