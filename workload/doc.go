// Package workload generates deterministic, seeded operation streams for
// exercising an addressable priority queue outside of the Dijkstra driver.
//
// A Stream is a []Op produced once from a seed and replayed identically
// against every heap variant under test: since Generate is a pure function
// of (n, seed, decreaseProbability), replaying the same stream against
// BinaryHeap, FibonacciHeap and HollowHeap and comparing the drained
// multisets of (key, value) pairs is a cheap, strong cross-variant
// equivalence check.
package workload
