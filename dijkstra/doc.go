// Package dijkstra runs single-source Dijkstra's shortest-path algorithm
// over a graph.Graph, using a pqueue.Interface as its relaxation queue.
//
// Overview:
//
//   - Run computes the minimum-cost distance from a single source vertex
//     to every other reachable vertex in O((V + E) log V) time.
//   - The relaxation queue's backing heap is selectable at call time via
//     WithHeapKind, so the same driver logic can be benchmarked against
//     the binary, Fibonacci and hollow heap implementations.
//
// When to use:
//
//   - Comparing addressable priority queue implementations under a
//     realistic workload rather than synthetic insert/extract streams.
//   - Any static, non-negative-weight shortest-path computation where the
//     dense int-indexed graph.Graph representation fits.
//
// Key features:
//
//   - WithHeapKind selects which of pqueue.BinaryHeap, pqueue.FibonacciHeap
//     or pqueue.HollowHeap backs the relaxation queue.
//   - Result carries not just distances and predecessors but the queue's
//     Metrics (per-operation counts and cumulative latency) and its
//     StructureStats (structural peaks), so a caller can build a
//     side-by-side report without re-running the algorithm.
//
// Performance and complexity:
//
//   - Time: O((V + E) log V) for the binary and Fibonacci heaps; the
//     hollow heap's amortised bound is the same but individual
//     ExtractMin calls can be slower depending on accumulated skeleton.
//   - Space: O(V + E): O(V) for dist/parent, O(E) worst case for stale
//     queue entries under lazy deletion.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: returned if a nil *graph.Graph is passed to Run.
//   - ErrSourceOutOfRange: returned if source is not a valid vertex of g.
//
// API reference:
//
//	func Run(
//	    g *graph.Graph,
//	    source graph.Vertex,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - g:      the graph to search; must be non-nil.
//	  - source: the starting vertex; must satisfy g.HasVertex(source).
//	  - opts:   zero or more functional options, currently just
//	            WithHeapKind(HeapKind).
//
// Thread safety:
//
//   - Run does not mutate g and may be called concurrently on the same
//     *graph.Graph with different sources, since graph.Graph is immutable
//     after Build. Each call constructs its own Queue and heap instance.
package dijkstra
