package graph

import (
	"errors"
	"math"
)

// Sentinel errors for the graph package.
var (
	// ErrGraphEmpty indicates a graph (or builder) with zero vertices.
	ErrGraphEmpty = errors.New("graph: graph is empty")

	// ErrVertexNotFound indicates a vertex id outside [0, NodeCount()).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeVertex indicates a negative vertex id was supplied.
	ErrNegativeVertex = errors.New("graph: vertex id must be non-negative")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)

// InfWeight is the sentinel "impassable" weight threshold. Edges with a
// weight at or above InfWeight are silently treated as absent by the
// Dijkstra driver. It is set to math.MaxInt64/4 so that dist[u] + w never
// overflows int64 for any two finite distances below the threshold.
const InfWeight int64 = math.MaxInt64 / 4

// Vertex is a dense, zero-based vertex identifier.
type Vertex int

// Edge is a single directed, weighted arc of the graph.
type Edge struct {
	From   Vertex
	To     Vertex
	Weight int64
}
