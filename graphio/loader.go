package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/heapbench/graph"
)

// maxWeight is the largest weight a single edge may carry, so that a
// Dijkstra relaxation's dist[u]+w can never overflow before it is compared
// against graph.InfWeight.
const maxWeight = math.MaxInt64 / 4

// Load reads a text edge-list graph from path. See LoadFrom for the format.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadFrom(f)
}

// LoadFrom reads a text edge-list graph from r. Each non-blank,
// non-"#"-prefixed line is "from to weight" (integers for from/to, a
// float for weight, rounded to the nearest int64). Vertex ids must be
// non-negative and node_count is one greater than the highest id seen.
// A source with zero edges is rejected with ErrNoEdges.
func LoadFrom(r io.Reader) (*graph.Graph, error) {
	builder := graph.NewBuilder()

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	sawEdge := false
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformedLine, lineNumber, line)
		}

		from, err1 := strconv.Atoi(fields[0])
		to, err2 := strconv.Atoi(fields[1])
		weight, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformedLine, lineNumber, line)
		}

		if from < 0 || to < 0 {
			return nil, fmt.Errorf("%w at line %d", ErrNegativeVertex, lineNumber)
		}

		discreteWeight := int64(math.Round(weight))
		if discreteWeight < 0 || discreteWeight > maxWeight {
			return nil, fmt.Errorf("%w at line %d", ErrWeightOutOfRange, lineNumber)
		}

		if err := builder.AddEdge(graph.Vertex(from), graph.Vertex(to), discreteWeight); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNumber, err)
		}
		sawEdge = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if !sawEdge {
		return nil, ErrNoEdges
	}

	g, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	return g, nil
}
