// Package graphio loads a Graph from a plain-text edge-list format: one
// "from to weight" triple per line, blank lines and "#"-prefixed comments
// skipped, node ids inferred from the highest id seen.
//
// Validation rules: node ids must be non-negative, weights are parsed as
// floating point and rounded to the nearest int64, and must land in
// [0, math.MaxInt64/4]; at least one edge is required.
package graphio
