package graph

// Graph is an immutable, dense adjacency-list representation of a weighted
// directed graph. It is built once by a Builder and never mutated again;
// every exported method is a pure read.
type Graph struct {
	// adjacency[v] holds every edge whose From == v.
	adjacency [][]Edge
	edgeCount int
}

// NodeCount returns the number of vertices, i.e. the exclusive upper bound
// on valid Vertex ids: every valid Vertex v satisfies 0 <= v < NodeCount().
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the total number of directed edges in the graph.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasVertex reports whether v is a valid vertex of g.
func (g *Graph) HasVertex(v Vertex) bool {
	return v >= 0 && int(v) < len(g.adjacency)
}

// Neighbors returns the out-edges of v. The returned slice is owned by the
// graph and must not be mutated by the caller. It returns ErrVertexNotFound
// if v is not a valid vertex.
func (g *Graph) Neighbors(v Vertex) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return g.adjacency[v], nil
}

// Builder accumulates edges before a single, immutable Graph is produced by
// Build. It follows a constructor-then-freeze idiom (repeated AddEdge
// calls followed by one Build), but the result can never be mutated again
// once built.
type Builder struct {
	edges     []Edge
	maxVertex int // highest vertex id seen, or -1 if none
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{maxVertex: -1}
}

// AddEdge appends a directed edge from -> to with the given weight.
// It returns ErrNegativeVertex if from or to is negative, and
// ErrNegativeWeight if weight is negative. The highest vertex id observed
// determines the eventual NodeCount().
func (b *Builder) AddEdge(from, to Vertex, weight int64) error {
	if from < 0 || to < 0 {
		return ErrNegativeVertex
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	b.edges = append(b.edges, Edge{From: from, To: to, Weight: weight})
	if int(from) > b.maxVertex {
		b.maxVertex = int(from)
	}
	if int(to) > b.maxVertex {
		b.maxVertex = int(to)
	}

	return nil
}

// Build freezes the accumulated edges into an immutable *Graph. It returns
// ErrGraphEmpty if no edges (and therefore no vertices) were ever added.
func (b *Builder) Build() (*Graph, error) {
	if b.maxVertex < 0 {
		return nil, ErrGraphEmpty
	}

	g := &Graph{adjacency: make([][]Edge, b.maxVertex+1)}
	for _, e := range b.edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		g.edgeCount++
	}

	return g, nil
}
