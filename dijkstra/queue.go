package dijkstra

import (
	"time"

	"github.com/katalvlaran/heapbench/graph"
	"github.com/katalvlaran/heapbench/pqueue"
)

// Metrics is the per-operation counter and cumulative-latency schema a
// Queue accumulates over its lifetime.
type Metrics struct {
	InsertCount   int
	DecreaseCount int
	ExtractCount  int

	InsertTimeNs   int64
	DecreaseTimeNs int64
	ExtractTimeNs  int64
}

// Queue is the Dijkstra adapter: a dense handles[v] table mapping graph
// vertices onto pqueue.Handle values, sitting in front of one concrete
// pqueue.Interface so the driver never has to know which heap variant it
// is relaxing against.
type Queue struct {
	heap    pqueue.Interface
	handles []pqueue.Handle
	metrics Metrics
}

// NewQueue returns a Queue backed by the named heap kind, its handle table
// pre-sized to nodeCount.
func NewQueue(kind HeapKind, nodeCount int) *Queue {
	return &Queue{
		heap:    newHeap(kind),
		handles: make([]pqueue.Handle, nodeCount),
	}
}

func newHeap(kind HeapKind) pqueue.Interface {
	switch kind {
	case HeapKindFibonacci:
		return pqueue.NewFibonacciHeap()
	case HeapKindHollow:
		return pqueue.NewHollowHeap()
	default:
		return pqueue.NewBinaryHeap()
	}
}

// PushOrDecrease performs an idempotent minimum-update over v: if v has
// never been pushed, it is inserted with key k; otherwise DecreaseKey is
// called with k. A DecreaseKey the heap rejects (k greater than the current
// key) leaves the entry unchanged and is not counted in DecreaseCount,
// though its elapsed time is still added to DecreaseTimeNs.
func (q *Queue) PushOrDecrease(v graph.Vertex, k int64) {
	if q.handles[v] == nil {
		start := time.Now()
		q.handles[v] = q.heap.Insert(k, int32(v))
		q.metrics.InsertTimeNs += time.Since(start).Nanoseconds()
		q.metrics.InsertCount++
		return
	}

	start := time.Now()
	err := q.heap.DecreaseKey(q.handles[v], k)
	q.metrics.DecreaseTimeNs += time.Since(start).Nanoseconds()
	if err == nil {
		q.metrics.DecreaseCount++
	}
}

// ExtractMin removes and returns the minimum (distance, vertex) pair,
// nulling handles[v] so any further reference to v's handle is invalid.
func (q *Queue) ExtractMin() (int64, graph.Vertex, error) {
	start := time.Now()
	k, v, err := q.heap.ExtractMin()
	q.metrics.ExtractTimeNs += time.Since(start).Nanoseconds()
	if err != nil {
		return 0, 0, err
	}
	q.metrics.ExtractCount++
	q.handles[v] = nil

	return k, graph.Vertex(v), nil
}

// Empty reports whether the underlying heap holds zero entries.
func (q *Queue) Empty() bool {
	return q.heap.IsEmpty()
}

// Metrics returns a snapshot of the queue's accumulated operation counts
// and cumulative latencies.
func (q *Queue) Metrics() Metrics {
	return q.metrics
}

// StructureStats returns the backing heap's structural peak counters.
func (q *Queue) StructureStats() pqueue.StructureStats {
	return q.heap.(pqueue.StatsProvider).StructureStats()
}
