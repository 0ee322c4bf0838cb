package search

import "github.com/pathtraceio/pathtrace/internal/models"

// Dijkstra computes the weighted shortest path with a min-heap on
// tentative distance. Terminating on the first closure of the goal is
// correct only because negative weights are disallowed; request
// validation rejects them before they reach the core.
type Dijkstra struct {
	graph models.Graph
}

// NewDijkstra creates a Dijkstra over the given graph.
func NewDijkstra(g models.Graph) *Dijkstra {
	return &Dijkstra{graph: g}
}

// Name implements Algorithm.
func (d *Dijkstra) Name() string { return "dijkstra" }

// Search implements Algorithm. Unspecified edge weights default to 1, so
// on a unit graph the reported distances match BFS edge counts. A
// neighbor's distance, parent and tree edge update only when the new
// tentative distance strictly improves the best known one.
func (d *Dijkstra) Search(start, goal string, opts models.Options) models.SearchResult {
	tr := newTracer(start, opts.Trace)

	dist := map[string]float64{start: 0}
	fr := newFrontier()
	fr.push(0, start, []string{start}, 0)

	tr.record(models.ActionInitialize, start, []string{start}, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{"distance": 0})

	for fr.len() > 0 {
		current := fr.pop()
		if tr.isSeen(current.node) {
			continue // stale entry, lazy deletion
		}

		tr.closeNode(current.node)
		tr.record(models.ActionVisit, current.node, current.path, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{"distance": current.dist})

		if current.node == goal {
			tr.record(models.ActionGoalFound, current.node, current.path, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{"distance": current.dist})

			res := tr.result(d.Name(), current.path, true)
			res.Distance = &current.dist

			return res
		}

		for _, neighbor := range d.graph.Neighbors(current.node) {
			if tr.isSeen(neighbor) {
				continue
			}

			weight := opts.Weights.Get(current.node, neighbor)
			newDist := current.dist + weight

			if best, ok := dist[neighbor]; ok && newDist >= best {
				continue
			}

			dist[neighbor] = newDist
			tr.setParent(neighbor, current.node)
			fr.push(newDist, neighbor, appendPath(current.path, neighbor), newDist)

			tr.record(models.ActionAddToFrontier, neighbor, appendPath(current.path, neighbor), tr.visited, fr.openNodes(tr.isSeen), map[string]float64{
				"weight":   weight,
				"distance": newDist,
			})
		}
	}

	return tr.result(d.Name(), nil, false)
}
