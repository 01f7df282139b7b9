package workload_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heapbench/pqueue"
	"github.com/katalvlaran/heapbench/workload"
)

func TestGenerate_DeterministicForFixedSeed(t *testing.T) {
	a := workload.Generate(200, 42, 0.4)
	b := workload.Generate(200, 42, 0.4)
	require.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	a := workload.Generate(200, 1, 0.4)
	b := workload.Generate(200, 2, 0.4)
	require.NotEqual(t, a, b)
}

func TestGenerate_DecreasesNeverIncreaseKey(t *testing.T) {
	stream := workload.Generate(500, 7, 0.7)
	current := make(map[int]int64)
	for _, op := range stream {
		switch op.Kind {
		case workload.OpInsert:
			current[op.Item] = op.Key
		case workload.OpDecrease:
			require.LessOrEqual(t, op.Key, current[op.Item])
			current[op.Item] = op.Key
		}
	}
}

func TestGenerate_ZeroProbabilityYieldsInsertsOnly(t *testing.T) {
	stream := workload.Generate(50, 9, 0)
	require.Len(t, stream, 50)
	for _, op := range stream {
		require.Equal(t, workload.OpInsert, op.Kind)
	}
}

// TestApply_CrossVariantEquivalence replays an identical stream against
// all three heap variants and checks draining them produces the identical
// multiset of (key, value) pairs.
func TestApply_CrossVariantEquivalence(t *testing.T) {
	stream := workload.Generate(300, 1234, 0.5)

	extractSorted := func(h pqueue.Interface) [][2]int64 {
		_, err := workload.Apply(h, stream)
		require.NoError(t, err)

		var out [][2]int64
		for !h.IsEmpty() {
			k, v, err := h.ExtractMin()
			require.NoError(t, err)
			out = append(out, [2]int64{k, int64(v)})
		}
		return out
	}

	binaryResult := extractSorted(pqueue.NewBinaryHeap())
	fibResult := extractSorted(pqueue.NewFibonacciHeap())
	hollowResult := extractSorted(pqueue.NewHollowHeap())

	require.Equal(t, binaryResult, fibResult)
	require.Equal(t, binaryResult, hollowResult)
}
