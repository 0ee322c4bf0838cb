package libgraph

import (
	"container/heap"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// Greedy runs a heuristic-ordered best-first walk. gonum has no greedy
// best-first search, so the adapter keeps a local implementation over the
// adjacency list, the same gap the reference library adapter had to fill.
func (a *Adapter) Greedy(start, goal string, heuristic models.Heuristic) models.SearchResult {
	visited := []string{}
	seen := map[string]bool{}
	parent := map[string]*string{start: nil}
	edges := []models.TreeEdge{}

	pq := &greedyQueue{}
	heap.Push(pq, &greedyItem{h: heuristic.Get(start), node: start})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*greedyItem)
		if seen[current.node] {
			continue
		}

		seen[current.node] = true
		visited = append(visited, current.node)

		if current.node == goal {
			return models.SearchResult{
				Path:      reconstruct(parent, start, goal),
				Visited:   visited,
				Success:   true,
				Algorithm: "gonum-greedy",
				Parent:    parent,
				TreeEdges: edges,
			}
		}

		for _, neighbor := range a.src.Neighbors(current.node) {
			if seen[neighbor] {
				continue
			}

			if _, ok := parent[neighbor]; !ok {
				p := current.node
				parent[neighbor] = &p
				edges = append(edges, models.TreeEdge{current.node, neighbor})
			}

			heap.Push(pq, &greedyItem{h: heuristic.Get(neighbor), node: neighbor})
		}
	}

	return models.SearchResult{
		Path:      []string{},
		Visited:   visited,
		Success:   false,
		Algorithm: "gonum-greedy",
		Parent:    parent,
		TreeEdges: edges,
	}
}

type greedyItem struct {
	h    float64
	seq  int
	node string
}

type greedyQueue struct {
	items []*greedyItem
	next  int
}

func (q *greedyQueue) Len() int { return len(q.items) }

func (q *greedyQueue) Less(i, j int) bool {
	if q.items[i].h == q.items[j].h {
		return q.items[i].seq < q.items[j].seq
	}

	return q.items[i].h < q.items[j].h
}

func (q *greedyQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *greedyQueue) Push(x any) {
	item := x.(*greedyItem)
	item.seq = q.next
	q.next++
	q.items = append(q.items, item)
}

func (q *greedyQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]

	return item
}
