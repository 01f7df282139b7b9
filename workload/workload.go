package workload

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/heapbench/pqueue"
)

// OpKind distinguishes the two operation shapes a Stream carries.
type OpKind int

const (
	// OpInsert inserts a fresh item.
	OpInsert OpKind = iota
	// OpDecrease lowers an already-inserted item's key.
	OpDecrease
)

// Op is one operation in a Stream. Item identifies the logical item
// (0-based insertion order) the operation targets; for OpInsert, Item is
// always the next unused item id.
type Op struct {
	Kind OpKind
	Item int
	Key  int64
}

// Stream is an ordered sequence of operations, replayed identically
// against every heap variant under test.
type Stream []Op

// Generate produces a deterministic Stream of n inserts, each followed
// (with probability decreaseProbability) by exactly one key-lowering
// decrease, using the given seed. The same (n, seed, decreaseProbability)
// always yields byte-identical output, which is what makes a cross-variant
// equivalence check meaningful.
//
// Every OpDecrease strictly lowers its target's key, so the stream is
// always valid to replay against any addressable priority queue without
// bookkeeping on the caller's part beyond remembering each item's handle.
func Generate(n int, seed uint64, decreaseProbability float64) Stream {
	r := rand.New(rand.NewSource(seed))

	stream := make(Stream, 0, 2*n)
	currentKey := make([]int64, n)
	for i := 0; i < n; i++ {
		key := r.Int63n(1 << 40)
		currentKey[i] = key
		stream = append(stream, Op{Kind: OpInsert, Item: i, Key: key})
	}

	for i := 0; i < n; i++ {
		if decreaseProbability <= 0 || r.Float64() >= decreaseProbability {
			continue
		}
		delta := int64(1)
		if currentKey[i] > 0 {
			delta = r.Int63n(currentKey[i]) + 1
		}
		currentKey[i] -= delta
		stream = append(stream, Op{Kind: OpDecrease, Item: i, Key: currentKey[i]})
	}

	return stream
}

// Apply replays s against h, returning each item's live handle indexed by
// item id. The caller is responsible for draining h afterward; Apply never
// calls ExtractMin itself.
func Apply(h pqueue.Interface, s Stream) ([]pqueue.Handle, error) {
	var handles []pqueue.Handle
	for _, op := range s {
		switch op.Kind {
		case OpInsert:
			if op.Item >= len(handles) {
				grown := make([]pqueue.Handle, op.Item+1)
				copy(grown, handles)
				handles = grown
			}
			handles[op.Item] = h.Insert(op.Key, int32(op.Item))
		case OpDecrease:
			if err := h.DecreaseKey(handles[op.Item], op.Key); err != nil {
				return nil, err
			}
		}
	}

	return handles, nil
}
