package search

import "github.com/pathtraceio/pathtrace/internal/models"

// AStar extends Dijkstra with a heuristic: the frontier is ordered by
// f = g + h. With the zero heuristic it produces the same path and cost as
// Dijkstra. Optimality requires the heuristic to be admissible and, for
// this lazy-deletion formulation, consistent; an inadmissible heuristic
// yields an unspecified (possibly suboptimal) path, not an error.
type AStar struct {
	graph models.Graph
}

// NewAStar creates an AStar over the given graph.
func NewAStar(g models.Graph) *AStar {
	return &AStar{graph: g}
}

// Name implements Algorithm.
func (a *AStar) Name() string { return "astar" }

// Search implements Algorithm. Relaxation policy matches Dijkstra: a
// neighbor's g-score, parent and tree edge update only on strict
// improvement, scored into the frontier by f = g + h.
func (a *AStar) Search(start, goal string, opts models.Options) models.SearchResult {
	tr := newTracer(start, opts.Trace)

	gScore := map[string]float64{start: 0}
	startF := opts.Heuristic.Get(start)

	fr := newFrontier()
	fr.push(startF, start, []string{start}, 0)

	tr.record(models.ActionInitialize, start, []string{start}, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{
		"g": 0,
		"h": startF,
		"f": startF,
	})

	for fr.len() > 0 {
		current := fr.pop()
		if tr.isSeen(current.node) {
			continue // stale entry, lazy deletion
		}

		tr.closeNode(current.node)
		tr.record(models.ActionVisit, current.node, current.path, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{
			"g": current.dist,
			"f": current.priority,
		})

		if current.node == goal {
			tr.record(models.ActionGoalFound, current.node, current.path, tr.visited, fr.openNodes(tr.isSeen), map[string]float64{"g": current.dist})

			res := tr.result(a.Name(), current.path, true)
			res.Cost = &current.dist

			return res
		}

		for _, neighbor := range a.graph.Neighbors(current.node) {
			if tr.isSeen(neighbor) {
				continue
			}

			weight := opts.Weights.Get(current.node, neighbor)
			tentativeG := current.dist + weight

			if best, ok := gScore[neighbor]; ok && tentativeG >= best {
				continue
			}

			gScore[neighbor] = tentativeG
			h := opts.Heuristic.Get(neighbor)
			f := tentativeG + h

			tr.setParent(neighbor, current.node)
			fr.push(f, neighbor, appendPath(current.path, neighbor), tentativeG)

			tr.record(models.ActionAddToFrontier, neighbor, appendPath(current.path, neighbor), tr.visited, fr.openNodes(tr.isSeen), map[string]float64{
				"g": tentativeG,
				"h": h,
				"f": f,
			})
		}
	}

	return tr.result(a.Name(), nil, false)
}
