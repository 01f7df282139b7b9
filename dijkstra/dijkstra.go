package dijkstra

import (
	"github.com/katalvlaran/heapbench/graph"
	"github.com/katalvlaran/heapbench/pqueue"
)

// Result holds the outcome of a single Run: per-vertex shortest distances
// and predecessors, plus the relaxation queue's operation metrics and
// structural peaks.
type Result struct {
	// Dist[v] is the shortest distance from the source to v, or
	// graph.InfWeight if v is unreachable.
	Dist []int64
	// Parent[v] is a predecessor of v on a shortest path from the source,
	// or -1 if v is the source or unreachable.
	Parent []int
	// HeapKind names which heap variant produced this Result.
	HeapKind HeapKind
	// Metrics is the relaxation queue's accumulated operation counts and
	// cumulative latencies.
	Metrics Metrics
	// Structure is the relaxation queue's structural peak counters.
	Structure pqueue.StructureStats
}

// Run computes single-source shortest distances from source over g, using
// the heap variant selected by opts (default HeapKindBinary) as the
// relaxation queue.
//
// Preconditions:
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a valid vertex of g (ErrSourceOutOfRange).
//
// The main loop performs lazy deletion of stale queue entries, guards
// against overflow before adding an edge weight to the current distance,
// and silently skips edges at or above graph.InfWeight.
func Run(g *graph.Graph, source graph.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceOutOfRange
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NodeCount()
	dist := make([]int64, n)
	parent := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = graph.InfWeight
		parent[v] = -1
	}
	dist[source] = 0

	q := NewQueue(cfg.HeapKind, n)
	q.PushOrDecrease(source, 0)

	for !q.Empty() {
		d, u, err := q.ExtractMin()
		if err != nil {
			return nil, err
		}
		if d > dist[u] {
			continue // lazy deletion: a fresher entry for u already won
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			if e.Weight >= graph.InfWeight || d > graph.InfWeight-e.Weight {
				continue // impassable edge, or relaxation would overflow
			}
			candidate := d + e.Weight
			if candidate < dist[e.To] {
				dist[e.To] = candidate
				parent[e.To] = int(u)
				q.PushOrDecrease(e.To, candidate)
			}
		}
	}

	return &Result{
		Dist:      dist,
		Parent:    parent,
		HeapKind:  cfg.HeapKind,
		Metrics:   q.Metrics(),
		Structure: q.StructureStats(),
	}, nil
}
