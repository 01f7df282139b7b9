// Package heapbench is a comparative benchmarking harness for three
// addressable priority queue implementations — binary heap, Fibonacci
// heap, and hollow heap — used interchangeably as the relaxation queue in
// a single-source Dijkstra computation.
//
// What is heapbench?
//
//	A pure-Go library and CLI that brings together:
//		• pqueue    — three interchangeable addressable priority queues
//		• graph     — an immutable, dense-array weighted directed graph
//		• graphio   — a text edge-list loader
//		• dijkstra  — a single-source shortest-path driver generic over
//		              the relaxation queue's backing heap
//		• workload  — deterministic, seeded operation streams for
//		              stress-testing and cross-variant equivalence checks
//		• cmd/heapbench — a CLI comparing all three heaps on one graph
//
// Why compare three heaps on the same driver?
//
//   - Binary heap: O(log n) worst case per operation, array-backed,
//     minimal per-node overhead.
//   - Fibonacci heap: O(1) amortised insert/decrease-key, O(log n)
//     amortised extract-min, at the cost of pointer-heavy bookkeeping.
//   - Hollow heap: O(1) amortised insert/decrease-key like Fibonacci, but
//     achieves it without mutating a non-root node's key — instead it
//     evacuates the old node into a "hollow" skeleton reclaimed lazily by
//     the next extract-min (the root's key is lowered in place).
//
// Under the hood, everything is organized under five subpackages plus a
// CLI:
//
//	pqueue/    — Interface, Handle, BinaryHeap, FibonacciHeap, HollowHeap,
//	             StructureStats
//	graph/     — Graph, Builder, Vertex, Edge
//	graphio/   — Load, LoadFrom
//	dijkstra/  — Run, Queue, Result, Metrics, HeapKind
//	workload/  — Op, Stream, Generate, Apply
//	cmd/heapbench/ — the comparison CLI
//
// Quick example:
//
//	g, _ := graphio.Load("roadmap.txt")
//	result, _ := dijkstra.Run(g, 0, dijkstra.WithHeapKind(dijkstra.HeapKindHollow))
//	fmt.Println(result.Dist, result.Metrics, result.Structure)
package heapbench
