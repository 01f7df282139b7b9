// Package pqueue_test exercises the shared invariants and end-to-end
// behavior of all three heap variants, plus cross-variant equivalence.
package pqueue_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heapbench/pqueue"
)

// newHeap constructs a fresh Interface value for the named variant.
func newHeap(kind string) pqueue.Interface {
	switch kind {
	case "binary":
		return pqueue.NewBinaryHeap()
	case "fibonacci":
		return pqueue.NewFibonacciHeap()
	case "hollow":
		return pqueue.NewHollowHeap()
	default:
		panic("unknown heap kind: " + kind)
	}
}

var allKinds = []string{"binary", "fibonacci", "hollow"}

type pair struct {
	key   int64
	value int32
}

func extractAll(t *testing.T, h pqueue.Interface) []pair {
	t.Helper()
	var out []pair
	for !h.IsEmpty() {
		k, v, err := h.ExtractMin()
		require.NoError(t, err)
		out = append(out, pair{k, v})
	}
	return out
}

func isNonDecreasing(pairs []pair) bool {
	for i := 1; i < len(pairs); i++ {
		if pairs[i].key < pairs[i-1].key {
			return false
		}
	}
	return true
}

// TestDecreaseKey_PastCurrentMin lowers a non-minimum entry below the
// current minimum and checks it now extracts first, for every variant.
func TestDecreaseKey_PastCurrentMin(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			h := newHeap(kind)
			_ = h.Insert(10, 1)
			h2 := h.Insert(20, 2)

			require.NoError(t, h.DecreaseKey(h2, 5))

			k, v, err := h.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, int64(5), k)
			require.Equal(t, int32(2), v)

			k, v, err = h.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, int64(10), k)
			require.Equal(t, int32(1), v)

			require.True(t, h.IsEmpty())
		})
	}
}

// TestBulkInsertWithTargetedDecreases inserts a large batch, decreases a
// scattered subset across several passes, and checks the final extraction
// order matches the resulting keys exactly.
func TestBulkInsertWithTargetedDecreases(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			h := newHeap(kind)
			const n = 250
			handles := make([]pqueue.Handle, n)
			finalKey := make([]int64, n)
			for i := 0; i < n; i++ {
				key := int64(1_000_000 + 1000*i)
				finalKey[i] = key
				handles[i] = h.Insert(key, int32(1000+i))
			}

			lower := func(i int, delta int64) {
				finalKey[i] -= delta
				require.NoError(t, h.DecreaseKey(handles[i], finalKey[i]))
			}
			for i := 0; i < n; i++ {
				if i%3 == 0 {
					lower(i, 200+int64(i%17))
				}
			}
			for i := 0; i < n; i++ {
				if i%5 == 1 {
					lower(i, 120+int64(i%19))
				}
			}
			for i := 0; i < n; i++ {
				if i%11 == 2 {
					lower(i, 80+int64(i%13))
				}
			}

			expected := make([]pair, n)
			for i := 0; i < n; i++ {
				expected[i] = pair{finalKey[i], int32(1000 + i)}
			}
			sort.Slice(expected, func(i, j int) bool {
				if expected[i].key != expected[j].key {
					return expected[i].key < expected[j].key
				}
				return expected[i].value < expected[j].value
			})

			got := extractAll(t, h)
			sort.Slice(got, func(i, j int) bool {
				if got[i].key != got[j].key {
					return got[i].key < got[j].key
				}
				return got[i].value < got[j].value
			})

			require.Equal(t, expected, got)
			require.True(t, h.IsEmpty())
		})
	}
}

// TestMerge_PreservesSortedOrder merges two disjoint-key heaps and checks
// the combined extraction order is fully sorted.
func TestMerge_PreservesSortedOrder(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			a := newHeap(kind)
			b := newHeap(kind)
			for _, p := range []pair{{1, 'a'}, {4, 'd'}, {7, 'g'}} {
				a.Insert(p.key, p.value)
			}
			for _, p := range []pair{{2, 'b'}, {3, 'c'}, {5, 'e'}} {
				b.Insert(p.key, p.value)
			}

			require.NoError(t, a.Merge(b))
			require.True(t, b.IsEmpty())

			got := extractAll(t, a)
			require.Equal(t, []pair{{1, 'a'}, {2, 'b'}, {3, 'c'}, {4, 'd'}, {5, 'e'}, {7, 'g'}}, got)
		})
	}
}

// TestUniversalInvariants checks IsEmpty tracks the insert/extract balance
// and that PeekMin agrees with ExtractMin's first component, for every
// variant.
func TestUniversalInvariants(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			h := newHeap(kind)
			require.True(t, h.IsEmpty())

			keys := []int64{50, 40, 30, 20, 10, 60, 5}
			for i, k := range keys {
				h.Insert(k, int32(i))
				require.False(t, h.IsEmpty())
			}

			// PeekMin agrees with ExtractMin's first component.
			pk, pv, err := h.PeekMin()
			require.NoError(t, err)
			ek, ev, err := h.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, pk, ek)
			require.Equal(t, pv, ev)

			// IsEmpty iff insert_count - extract_count == 0.
			remaining := len(keys) - 1
			for i := 0; i < remaining; i++ {
				require.False(t, h.IsEmpty())
				_, _, err := h.ExtractMin()
				require.NoError(t, err)
			}
			require.True(t, h.IsEmpty())
		})
	}
}

// TestDecreaseKeyRejectsIncrease checks that a DecreaseKey call carrying a
// larger key is rejected and leaves the heap untouched.
func TestDecreaseKeyRejectsIncrease(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			h := newHeap(kind)
			handle := h.Insert(10, 1)
			h.Insert(20, 2)

			err := h.DecreaseKey(handle, 15)
			require.ErrorIs(t, err, pqueue.ErrInvalidArgument)

			// Heap is unchanged: extraction order is unaffected.
			k, _, err := h.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, int64(10), k)
		})
	}
}

func TestDecreaseKeyRejectsNilAndStaleHandles(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			h := newHeap(kind)
			require.ErrorIs(t, h.DecreaseKey(nil, 1), pqueue.ErrInvalidArgument)

			handle := h.Insert(10, 1)
			_, _, err := h.ExtractMin()
			require.NoError(t, err)

			require.ErrorIs(t, h.DecreaseKey(handle, 1), pqueue.ErrInvalidArgument)
		})
	}
}

func TestEmptyQueueErrors(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			h := newHeap(kind)
			_, _, err := h.PeekMin()
			require.ErrorIs(t, err, pqueue.ErrEmpty)
			_, _, err = h.ExtractMin()
			require.ErrorIs(t, err, pqueue.ErrEmpty)
		})
	}
}

func TestMergeRejectsCrossVariant(t *testing.T) {
	bh := pqueue.NewBinaryHeap()
	fh := pqueue.NewFibonacciHeap()
	require.ErrorIs(t, bh.Merge(fh), pqueue.ErrInvalidArgument)
}

// TestSortedExtractProperty inserts n keys, decreases a few, then checks
// that extracting all of them yields a non-decreasing sequence.
func TestSortedExtractProperty(t *testing.T) {
	keys := []int64{93, 12, 47, 5, 68, 1, 77, 34, 22, 60, 15, 88, 3, 41, 56}
	for _, kind := range allKinds {
		t.Run(kind, func(t *testing.T) {
			h := newHeap(kind)
			handles := make([]pqueue.Handle, len(keys))
			for i, k := range keys {
				handles[i] = h.Insert(k, int32(i))
			}
			// Lower a few keys, still preserving relative order requirement.
			require.NoError(t, h.DecreaseKey(handles[4], 2))  // 68 -> 2
			require.NoError(t, h.DecreaseKey(handles[10], 0)) // 15 -> 0

			got := extractAll(t, h)
			require.True(t, isNonDecreasing(got), "expected non-decreasing sequence, got %v", got)
			require.Equal(t, len(keys), len(got))
		})
	}
}
