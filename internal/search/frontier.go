package search

import (
	"container/heap"
	"sort"
)

// frontierItem is one priority-queue entry. seq is a monotonically
// increasing insertion counter: equal priorities resolve in insertion
// order, which keeps traversal deterministic for a fixed input without
// comparing paths.
type frontierItem struct {
	priority float64
	seq      int
	node     string
	path     []string
	dist     float64
}

type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority == h[j].priority {
		return h[i].seq < h[j].seq
	}

	return h[i].priority < h[j].priority
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) { *h = append(*h, x.(*frontierItem)) }

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// frontier is the priority queue shared by the weighted and informed
// searches. Stale entries for already-closed nodes are tolerated and
// discarded on pop (lazy deletion).
type frontier struct {
	h       frontierHeap
	nextSeq int
}

func newFrontier() *frontier {
	return &frontier{h: frontierHeap{}}
}

func (f *frontier) push(priority float64, node string, path []string, dist float64) {
	heap.Push(&f.h, &frontierItem{
		priority: priority,
		seq:      f.nextSeq,
		node:     node,
		path:     path,
		dist:     dist,
	})
	f.nextSeq++
}

func (f *frontier) pop() *frontierItem {
	return heap.Pop(&f.h).(*frontierItem)
}

func (f *frontier) len() int {
	return len(f.h)
}

// openNodes returns the distinct node labels currently queued, in insertion
// order, excluding nodes the predicate reports as closed. Used only for
// step snapshots.
func (f *frontier) openNodes(closed func(string) bool) []string {
	items := make([]*frontierItem, len(f.h))
	copy(items, f.h)
	sort.Slice(items, func(i, j int) bool { return items[i].seq < items[j].seq })

	var out []string

	dedup := make(map[string]bool, len(items))

	for _, it := range items {
		if dedup[it.node] || closed(it.node) {
			continue
		}

		dedup[it.node] = true
		out = append(out, it.node)
	}

	return out
}
