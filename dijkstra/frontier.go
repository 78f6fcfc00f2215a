package dijkstra

import (
	"math"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// frontierItem is a pending state with the accumulated cost of the route
// that produced it. parent is the settled state it was expanded from and seq
// the insertion number, used to break cost ties in FIFO order.
type frontierItem struct {
	cost   int64
	key    StateKey
	parent StateKey
	seq    uint64
}

// frontier is a min-heap of frontierItem ordered by cost, then seq.
// It uses the “lazy-decrease-key” approach: a state may be pushed many times
// with different costs; every entry after the first one popped is stale and
// is dropped by the settle step.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority, earlier push wins ties.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to frontierItem.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// settledSet maps each finalized state to the cost it was settled at.
// Entries are written once and never changed.
type settledSet map[StateKey]int64

// settle records key at cost unless it is already present.
// It reports whether the entry was written.
func (s settledSet) settle(key StateKey, cost int64) bool {
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = cost
	return true
}

// bestAt returns the cheapest settled state located at goal whose run length
// is at least minRun. Ties are broken by StateKey order so the answer does
// not depend on map iteration.
func (s settledSet) bestAt(goal gridgraph.Point, minRun int) (StateKey, int64, bool) {
	var (
		best     StateKey
		bestCost int64 = math.MaxInt64
		found    bool
	)
	for k, cost := range s {
		if k.Pos != goal || k.Run < minRun {
			continue
		}
		if !found || cost < bestCost || (cost == bestCost && keyLess(k, best)) {
			best, bestCost, found = k, cost, true
		}
	}
	return best, bestCost, found
}

// keyLess orders keys by direction, then run length.
func keyLess(a, b StateKey) bool {
	if a.Dir != b.Dir {
		return a.Dir < b.Dir
	}
	return a.Run < b.Run
}
