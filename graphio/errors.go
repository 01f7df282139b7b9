package graphio

import "errors"

var (
	// ErrNoEdges is returned when a source contains zero parseable edges.
	ErrNoEdges = errors.New("graphio: source contains no edges")
	// ErrMalformedLine is returned when a non-blank, non-comment line does
	// not parse as "from to weight".
	ErrMalformedLine = errors.New("graphio: malformed edge line")
	// ErrNegativeVertex is returned when a line names a negative node id.
	ErrNegativeVertex = errors.New("graphio: negative node id")
	// ErrWeightOutOfRange is returned when a line's weight rounds to a
	// negative value or exceeds the maximum weight a Dijkstra relaxation
	// can safely add without overflowing graph.InfWeight.
	ErrWeightOutOfRange = errors.New("graphio: weight out of range")
)
