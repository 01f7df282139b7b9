// Package pqueue defines the addressable priority-queue capability shared
// by BinaryHeap, FibonacciHeap and HollowHeap, and implements all three.
//
// An addressable priority queue returns an opaque Handle from Insert,
// which the caller later presents to DecreaseKey to lower that entry's key
// in place. Keys are signed 64-bit integers (lower = higher priority);
// values are signed 32-bit integers and are treated as opaque payload —
// the Dijkstra driver happens to store vertex ids in them, but pqueue
// itself never interprets a value.
//
// Under the hood:
//
//	Interface       — the five-operation capability (Insert/PeekMin/
//	                   ExtractMin/DecreaseKey/Merge) plus IsEmpty.
//	Handle          — an opaque per-entry reference, valid from Insert
//	                   until the ExtractMin that removes its entry.
//	BinaryHeap      — array-backed implicit binary heap.
//	FibonacciHeap   — lazily-consolidated forest of heap-ordered trees.
//	HollowHeap      — single-tree forest of cells with hollow-cell
//	                   indirection on decrease-key.
//	StructureStats  — per-heap peak structural counters.
//
// Why three implementations behind one interface? The Dijkstra adapter
// (package dijkstra) picks its heap kind at runtime, the same way the
// original C++ program's HeapSelection enum drove make_queue_adapter — Go
// expresses that as a plain interface value rather than a template
// instantiation, per the polymorphism design note in the source spec.
//
// Errors:
//
//	ErrEmpty            — PeekMin/ExtractMin on an empty queue.
//	ErrInvalidArgument  — nil/foreign handle, a decrease that would
//	                       raise the key, or a cross-variant Merge.
package pqueue
