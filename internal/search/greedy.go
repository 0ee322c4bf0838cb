package search

import "github.com/pathtraceio/pathtrace/internal/models"

// GreedyBestFirst orders the frontier purely by heuristic value, ignoring
// accumulated cost. It is deliberately myopic: a fast, explicitly
// suboptimal baseline for comparing against A*.
type GreedyBestFirst struct {
	graph models.Graph
}

// NewGreedyBestFirst creates a GreedyBestFirst over the given graph.
func NewGreedyBestFirst(g models.Graph) *GreedyBestFirst {
	return &GreedyBestFirst{graph: g}
}

// Name implements Algorithm.
func (g *GreedyBestFirst) Name() string { return "greedy" }

// Search implements Algorithm. There is no relaxation: the parent pointer
// is fixed at first discovery, and a node may be queued repeatedly with
// the same heuristic score. Stale entries are discarded on pop.
func (g *GreedyBestFirst) Search(start, goal string, opts models.Options) models.SearchResult {
	tr := newTracer(start, opts.Trace)

	startH := opts.Heuristic.Get(start)
	fr := newFrontier()
	fr.push(startH, start, []string{start}, 0)

	tr.record(models.ActionInitialize, start, []string{start}, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{"h": startH})

	for fr.len() > 0 {
		current := fr.pop()
		if tr.isSeen(current.node) {
			continue // stale entry, lazy deletion
		}

		tr.closeNode(current.node)
		tr.record(models.ActionVisit, current.node, current.path, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{"h": current.priority})

		if current.node == goal {
			tr.record(models.ActionGoalFound, current.node, current.path, tr.visited, fr.openNodes(tr.isSeen), nil)

			return tr.result(g.Name(), current.path, true)
		}

		for _, neighbor := range g.graph.Neighbors(current.node) {
			if tr.isSeen(neighbor) {
				continue
			}

			h := opts.Heuristic.Get(neighbor)

			if !tr.hasParent(neighbor) {
				tr.setParent(neighbor, current.node)
			}

			fr.push(h, neighbor, appendPath(current.path, neighbor), 0)

			tr.record(models.ActionAddToFrontier, neighbor, appendPath(current.path, neighbor), tr.visited, fr.openNodes(tr.isSeen), map[string]float64{"h": h})
		}
	}

	return tr.result(g.Name(), nil, false)
}
