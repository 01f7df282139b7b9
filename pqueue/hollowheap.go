package pqueue

// hollowCellBytes approximates the in-memory footprint of one hollow-heap
// cell, used only for the approximate byte counters in StructureStats.
const hollowCellBytes = 56

// initialRankCapacity is the starting size of the rank-indexed scratch
// table used by ExtractMin's sweep.
const initialRankCapacity = 16

// hollowCell is one node of the hollow-heap forest. A cell that has been
// evacuated by DecreaseKey is marked hollow and persists as structural
// skeleton until the next ExtractMin sweeps it away.
type hollowCell struct {
	key   int64
	value int32

	child        *hollowCell // first child
	next         *hollowCell // next sibling in the parent's child list
	secondParent *hollowCell // secondary incoming edge, see DecreaseKey

	rank   int
	hollow bool
	owner  *hollowHandle
}

// hollowHandle is the HollowHeap's Handle implementation. cell is nil once
// the handle's entry has been extracted, which DecreaseKey treats as
// ErrInvalidArgument rather than dereferencing a dangling cell.
type hollowHandle struct {
	cell *hollowCell
}

func (*hollowHandle) isHandle() {}

// HollowHeap is a single-tree mergeable heap using cell indirection.
// Insert and DecreaseKey are O(1) amortised (eager linking against
// the single root); ExtractMin is O(log n) amortised, occasionally paying
// for whatever hollow skeleton has accumulated since the last extraction.
// A HollowHeap is not safe for concurrent use.
type HollowHeap struct {
	root *hollowCell
	size int // logical (non-hollow) entry count

	cellsAllocated int64 // monotonic: hollow cells are never individually freed
	rankmap        []*hollowCell
	toDelete       []*hollowCell // reused scratch buffer for ExtractMin's sweep

	stats StructureStats
}

// NewHollowHeap returns an empty HollowHeap.
func NewHollowHeap() *HollowHeap {
	return &HollowHeap{rankmap: make([]*hollowCell, initialRankCapacity)}
}

// StructureStats returns a snapshot of the heap's structural peak
// counters. CurrentNodes/MaxNodes count logical (non-hollow) entries;
// CurrentBytes/MaxBytes count every cell ever allocated, since hollow
// cells are never individually freed until the whole heap is discarded —
// they persist as structural skeleton, which is the entire point of the
// hollow-heap design being benchmarked.
func (h *HollowHeap) StructureStats() StructureStats {
	return h.stats
}

// IsEmpty reports whether the heap holds zero logical entries.
func (h *HollowHeap) IsEmpty() bool {
	return h.root == nil
}

func (h *HollowHeap) newCell(key int64, value int32, owner *hollowHandle) *hollowCell {
	h.cellsAllocated++
	return &hollowCell{key: key, value: value, owner: owner}
}

// link merges two cells into one tree, returning the winner. The smaller
// key wins; on equal keys, the larger-rank cell wins, which avoids rank
// stagnation (see DESIGN.md for why this tie-break was chosen).
func (h *HollowHeap) link(u, v *hollowCell) *hollowCell {
	if u == nil {
		return v
	}
	if v == nil {
		return u
	}

	winner, loser := u, v
	if v.key < u.key || (v.key == u.key && v.rank > u.rank) {
		winner, loser = v, u
	}

	loser.next = winner.child
	winner.child = loser
	loser.secondParent = nil
	h.stats.LinkOperations++

	return winner
}

// Insert mints a fresh, non-hollow cell and eagerly links it against the
// current root.
func (h *HollowHeap) Insert(key int64, value int32) Handle {
	handle := &hollowHandle{}
	cell := h.newCell(key, value, handle)
	handle.cell = cell
	h.size++
	h.root = h.link(h.root, cell)
	h.updateSizeMetrics()

	return handle
}

// PeekMin returns the minimum-key pair without removing it.
func (h *HollowHeap) PeekMin() (int64, int32, error) {
	if h.IsEmpty() {
		return 0, 0, ErrEmpty
	}

	return h.root.key, h.root.value, nil
}

// DecreaseKey lowers the key named by handle. If the handle's cell is
// already the root, the key is simply lowered in place. Otherwise the old
// cell is marked hollow and a fresh cell carrying the lowered key is
// linked against the root, preserving the amortised rank bound by
// dropping the new cell's rank by up to 2.
func (h *HollowHeap) DecreaseKey(handle Handle, newKey int64) error {
	hh, ok := handle.(*hollowHandle)
	if !ok || hh == nil || hh.cell == nil {
		return ErrInvalidArgument
	}

	node := hh.cell
	if newKey > node.key {
		return ErrInvalidArgument
	}

	if node == h.root {
		node.key = newKey
		return nil
	}

	newCell := h.newCell(newKey, node.value, hh)
	if node.rank > 2 {
		newCell.rank = node.rank - 2
	}
	hh.cell = newCell
	node.hollow = true

	if h.root == nil {
		// Pathological: normally unreachable, since node != h.root implies
		// a root already exists.
		h.root = newCell
		h.updateSizeMetrics()
		return nil
	}

	oldRoot := h.root
	h.root = h.link(h.root, newCell)
	if h.root == oldRoot {
		// new_cell did not dethrone the root: keep the old cell reachable
		// as new_cell's child, and record the second-parent edge so the
		// old cell's true parent's degree bookkeeping stays correct until
		// the next sweep.
		newCell.child = node
		node.secondParent = newCell
	}
	h.updateSizeMetrics()

	return nil
}

// ExtractMin removes and returns the minimum-key pair, then sweeps the
// hollow skeleton reachable from the old root, relinking every surviving
// non-hollow cell by rank into a single new root.
func (h *HollowHeap) ExtractMin() (int64, int32, error) {
	if h.IsEmpty() {
		return 0, 0, ErrEmpty
	}

	oldRoot := h.root
	resultKey, resultValue := oldRoot.key, oldRoot.value
	if oldRoot.owner != nil && oldRoot.owner.cell == oldRoot {
		oldRoot.owner.cell = nil
	}

	toDelete := h.toDelete[:0]
	toDelete = append(toDelete, oldRoot)
	oldRoot.hollow = true

	maxRank := -1
	for idx := 0; idx < len(toDelete); idx++ {
		parent := toDelete[idx]
		cur := parent.child
		parent.child = nil

		for cur != nil {
			next := cur.next
			cur.next = nil

			if !cur.hollow {
				for {
					h.ensureRankCapacity(cur.rank)
					occupant := h.rankmap[cur.rank]
					if occupant == nil {
						break
					}
					h.rankmap[cur.rank] = nil
					cur = h.link(cur, occupant)
					cur.rank++
					h.stats.noteHeightOrRank(cur.rank)
				}
				h.ensureRankCapacity(cur.rank)
				h.rankmap[cur.rank] = cur
				if cur.rank > maxRank {
					maxRank = cur.rank
				}
			} else if cur.secondParent == nil {
				// Pure skeleton: sweep its subtree too.
				toDelete = append(toDelete, cur)
			} else if cur.secondParent == parent {
				// Reached via its primary parent: sweep it now rather than
				// waiting for a second visit that may never come.
				cur.secondParent = nil
				toDelete = append(toDelete, cur)
			} else {
				// Reached via the secondary link: its true parent will
				// visit it in its own turn.
				cur.secondParent = nil
			}

			cur = next
		}
	}
	h.toDelete = toDelete[:0]

	h.root = nil
	if maxRank >= 0 {
		for i := maxRank; i >= 0; i-- {
			if i >= len(h.rankmap) {
				continue
			}
			node := h.rankmap[i]
			if node == nil {
				continue
			}
			if h.root == nil {
				h.root = node
			} else {
				h.root = h.link(h.root, node)
			}
			h.rankmap[i] = nil
		}
	}

	h.size--
	h.stats.ConsolidationPasses++
	if h.root == nil {
		h.clearRankmap()
	}
	h.updateSizeMetrics()

	return resultKey, resultValue, nil
}

// Merge links other's root against the receiver's and empties other.
func (h *HollowHeap) Merge(other Interface) error {
	o, ok := other.(*HollowHeap)
	if !ok {
		return ErrInvalidArgument
	}
	if o == h || o.size == 0 {
		return nil
	}

	if h.root == nil {
		h.root = o.root
	} else if o.root != nil {
		h.root = h.link(h.root, o.root)
	}
	h.size += o.size
	h.cellsAllocated += o.cellsAllocated

	o.size = 0
	o.root = nil
	o.cellsAllocated = 0
	o.rankmap = make([]*hollowCell, initialRankCapacity)
	o.toDelete = nil
	o.updateSizeMetrics()
	h.updateSizeMetrics()

	return nil
}

func (h *HollowHeap) ensureRankCapacity(rank int) {
	if rank < len(h.rankmap) {
		return
	}
	grown := make([]*hollowCell, rank+1)
	copy(grown, h.rankmap)
	h.rankmap = grown
}

func (h *HollowHeap) clearRankmap() {
	for i := range h.rankmap {
		h.rankmap[i] = nil
	}
}

func (h *HollowHeap) updateSizeMetrics() {
	h.stats.noteNodes(h.size)
	if h.root != nil {
		h.stats.noteRoots(1)
	}
	h.stats.noteBytes(h.cellsAllocated * hollowCellBytes)
}
