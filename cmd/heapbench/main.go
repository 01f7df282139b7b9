// Command heapbench loads a text edge-list graph, runs single-source
// Dijkstra against each of the three addressable priority queue variants,
// and prints a side-by-side report of per-operation metrics and structural
// peaks. Shortest distances are computed but not printed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/heapbench/dijkstra"
	"github.com/katalvlaran/heapbench/graph"
	"github.com/katalvlaran/heapbench/graphio"
)

func main() {
	graphPath := flag.String("graph", "", "path to a text edge-list graph file (required)")
	source := flag.Int("source", 0, "source vertex id")
	flag.Parse()

	if *graphPath == "" {
		log.Fatal("heapbench: -graph is required")
	}

	g, err := graphio.Load(*graphPath)
	if err != nil {
		log.Fatalf("heapbench: %v", err)
	}

	if err := run(g, graph.Vertex(*source), os.Stdout); err != nil {
		log.Fatalf("heapbench: %v", err)
	}
}

func run(g *graph.Graph, source graph.Vertex, out *os.File) error {
	kinds := []dijkstra.HeapKind{dijkstra.HeapKindBinary, dijkstra.HeapKindFibonacci, dijkstra.HeapKindHollow}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "heap\tinsert_count\tdecrease_count\textract_count\tinsert_ns\tdecrease_ns\textract_ns\tmax_nodes\tmax_height_or_rank\tmax_roots\tlink_ops")

	for _, kind := range kinds {
		result, err := dijkstra.Run(g, source, dijkstra.WithHeapKind(kind))
		if err != nil {
			return fmt.Errorf("run %s: %w", kind, err)
		}

		m, s := result.Metrics, result.Structure
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			kind, m.InsertCount, m.DecreaseCount, m.ExtractCount,
			m.InsertTimeNs, m.DecreaseTimeNs, m.ExtractTimeNs,
			s.MaxNodes, s.MaxTreeHeightOrRank, s.MaxRoots, s.LinkOperations,
		)
	}

	return w.Flush()
}
