// Package dijkstra runs single-source Dijkstra over a graph.Graph, relaxing
// edges through a pluggable pqueue.Interface so that a benchmark can compare
// the binary, Fibonacci and hollow heaps on identical input.
//
// Complexity:
//
//	– Time:  O((V + E) log V) with the binary and Fibonacci heaps;
//	   the hollow heap's ExtractMin is amortised O(log V) but pays for
//	   whatever hollow skeleton has accumulated since the previous call.
//	– Space: O(V + E): O(V) for dist/parent, O(E) worst case for stale
//	   queue entries accumulated under lazy deletion.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if a nil *graph.Graph is passed to Run.
//	– ErrSourceOutOfRange if source is not a valid vertex of g.
package dijkstra

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that source is not a valid vertex of
	// the supplied graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")
)

// HeapKind selects which pqueue.Interface implementation backs a Queue.
type HeapKind int

const (
	// HeapKindBinary backs the queue with a pqueue.BinaryHeap.
	HeapKindBinary HeapKind = iota
	// HeapKindFibonacci backs the queue with a pqueue.FibonacciHeap.
	HeapKindFibonacci
	// HeapKindHollow backs the queue with a pqueue.HollowHeap.
	HeapKindHollow
)

// String renders the heap kind's report label.
func (k HeapKind) String() string {
	switch k {
	case HeapKindBinary:
		return "binary"
	case HeapKindFibonacci:
		return "fibonacci"
	case HeapKindHollow:
		return "hollow"
	default:
		return "unknown"
	}
}

// Options configures a single Run call.
type Options struct {
	// HeapKind selects the relaxation queue's backing heap. Default is
	// HeapKindBinary.
	HeapKind HeapKind
}

// Option is a functional option for Run.
type Option func(*Options)

// WithHeapKind selects which heap variant backs the relaxation queue.
func WithHeapKind(kind HeapKind) Option {
	return func(o *Options) {
		o.HeapKind = kind
	}
}

// DefaultOptions returns the default configuration: HeapKindBinary.
func DefaultOptions() Options {
	return Options{HeapKind: HeapKindBinary}
}
