package pqueue

// binaryNodeBytes approximates the in-memory footprint of one binary-heap
// entry (key + value + index + the slot pointer), used only for the
// approximate byte counters in StructureStats.
const binaryNodeBytes = 32

// binaryHandle is the BinaryHeap's Handle implementation. index tracks the
// entry's current position in the backing array and is kept up to date on
// every swap, so DecreaseKey can sift up from a known position in
// O(log n) rather than scanning for the entry.
type binaryHandle struct {
	key   int64
	value int32
	index int // -1 once the entry has been extracted
}

func (*binaryHandle) isHandle() {}

// BinaryHeap is a dense array-backed implicit binary heap.
// Insert and DecreaseKey are O(log n); PeekMin and IsEmpty are O(1).
// A BinaryHeap is not safe for concurrent use.
type BinaryHeap struct {
	nodes []*binaryHandle
	stats StructureStats
}

// NewBinaryHeap returns an empty BinaryHeap.
func NewBinaryHeap() *BinaryHeap {
	return &BinaryHeap{}
}

// StructureStats returns a snapshot of the heap's structural peak
// counters.
func (h *BinaryHeap) StructureStats() StructureStats {
	return h.stats
}

// IsEmpty reports whether the heap holds zero entries.
func (h *BinaryHeap) IsEmpty() bool {
	return len(h.nodes) == 0
}

// Insert adds (key, value) and returns a handle valid until the ExtractMin
// that removes it.
func (h *BinaryHeap) Insert(key int64, value int32) Handle {
	node := &binaryHandle{key: key, value: value, index: len(h.nodes)}
	h.nodes = append(h.nodes, node)
	h.siftUp(node.index)
	h.updateSizeMetrics()

	return node
}

// PeekMin returns the minimum-key pair without removing it.
func (h *BinaryHeap) PeekMin() (int64, int32, error) {
	if h.IsEmpty() {
		return 0, 0, ErrEmpty
	}

	root := h.nodes[0]

	return root.key, root.value, nil
}

// ExtractMin removes and returns the minimum-key pair.
func (h *BinaryHeap) ExtractMin() (int64, int32, error) {
	if h.IsEmpty() {
		return 0, 0, ErrEmpty
	}

	root := h.nodes[0]
	last := h.nodes[len(h.nodes)-1]
	h.nodes = h.nodes[:len(h.nodes)-1]
	if len(h.nodes) > 0 {
		h.nodes[0] = last
		last.index = 0
		h.siftDown(0)
	}
	root.index = -1 // invalidate: any further DecreaseKey(root, ...) now fails
	h.updateSizeMetrics()

	return root.key, root.value, nil
}

// DecreaseKey lowers node's key. It rejects nil handles, foreign handles,
// stale (already-extracted) handles, and key increases, all without
// mutating the heap.
func (h *BinaryHeap) DecreaseKey(handle Handle, newKey int64) error {
	node, ok := handle.(*binaryHandle)
	if !ok || node == nil {
		return ErrInvalidArgument
	}
	if node.index < 0 || node.index >= len(h.nodes) || h.nodes[node.index] != node {
		return ErrInvalidArgument
	}
	if newKey > node.key {
		return ErrInvalidArgument
	}

	node.key = newKey
	h.siftUp(node.index)

	return nil
}

// Merge concatenates other's entries onto the receiver and re-heapifies
// with a single Floyd build, O(n+m); sifting up each imported element
// individually would also be correct but costs more. other is left empty.
// Merging a heap with itself, or an already-empty heap, is a no-op.
func (h *BinaryHeap) Merge(other Interface) error {
	o, ok := other.(*BinaryHeap)
	if !ok {
		return ErrInvalidArgument
	}
	if o == h || len(o.nodes) == 0 {
		return nil
	}

	for _, node := range o.nodes {
		node.index = len(h.nodes)
		h.nodes = append(h.nodes, node)
	}
	o.nodes = nil
	o.updateSizeMetrics()

	for i := len(h.nodes)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	h.updateSizeMetrics()

	return nil
}

func (h *BinaryHeap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].index = i
	h.nodes[j].index = j
	h.stats.LinkOperations++
}

// siftUp restores heap order upward from i: while the parent's key exceeds
// the child's, swap and continue toward the root.
func (h *BinaryHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[parent].key <= h.nodes[i].key {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

// siftDown restores heap order downward from i: repeatedly swap with the
// strictly-smaller child until no child is smaller than the current node.
func (h *BinaryHeap) siftDown(i int) {
	n := len(h.nodes)
	rearranged := false
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.nodes[left].key < h.nodes[smallest].key {
			smallest = left
		}
		if right < n && h.nodes[right].key < h.nodes[smallest].key {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
		rearranged = true
	}
	if rearranged {
		h.stats.ConsolidationPasses++
	}
}

func binaryHeapHeight(nodes int) int {
	height := 0
	for nodes > 0 {
		nodes >>= 1
		height++
	}

	return height
}

func (h *BinaryHeap) updateSizeMetrics() {
	n := len(h.nodes)
	h.stats.noteNodes(n)
	h.stats.noteHeightOrRank(binaryHeapHeight(n))
	roots := 0
	if n > 0 {
		roots = 1
	}
	h.stats.noteRoots(roots)
	h.stats.noteBytes(int64(n) * binaryNodeBytes)
}
