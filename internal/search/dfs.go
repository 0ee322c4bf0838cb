package search

import "github.com/pathtraceio/pathtrace/internal/models"

// DepthFirst explores the graph with a LIFO stack. It returns some path
// between start and goal when one exists, with no optimality guarantee.
type DepthFirst struct {
	graph models.Graph
}

// NewDepthFirst creates a DepthFirst over the given graph.
func NewDepthFirst(g models.Graph) *DepthFirst {
	return &DepthFirst{graph: g}
}

// Name implements Algorithm.
func (d *DepthFirst) Name() string { return "dfs" }

type dfsItem struct {
	node string
	path []string
}

// Search implements Algorithm. Neighbors are pushed in reverse adjacency
// order so the first-listed neighbor is explored first after popping. A
// node may sit on the stack more than once before being closed; stale
// entries are skipped on pop. Parent and tree edge are recorded at first
// discovery, not at pop, so the discovery tree reflects first-discovery
// order even when visitation order differs.
func (d *DepthFirst) Search(start, goal string, opts models.Options) models.SearchResult {
	tr := newTracer(start, opts.Trace)

	stack := []dfsItem{{node: start, path: []string{start}}}
	opened := []string{start}
	closed := []string{}

	tr.record(models.ActionInitialize, start, []string{start}, closed, opened, nil)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if tr.isSeen(current.node) {
			continue
		}

		opened = removeString(opened, current.node)
		if !containsString(closed, current.node) {
			closed = append(closed, current.node)
		}

		tr.closeNode(current.node)
		tr.record(models.ActionVisit, current.node, current.path, closed, opened, nil)

		if current.node == goal {
			tr.record(models.ActionGoalFound, current.node, current.path, closed, opened, nil)

			return tr.result(d.Name(), current.path, true)
		}

		neighbors := d.graph.Neighbors(current.node)
		for i := len(neighbors) - 1; i >= 0; i-- {
			neighbor := neighbors[i]
			if tr.isSeen(neighbor) {
				continue
			}

			if !tr.hasParent(neighbor) {
				tr.setParent(neighbor, current.node)
			}

			stack = append(stack, dfsItem{node: neighbor, path: appendPath(current.path, neighbor)})

			if !containsString(opened, neighbor) {
				opened = append(opened, neighbor)
			}

			tr.record(models.ActionAddToFrontier, neighbor, appendPath(current.path, neighbor), closed, opened, nil)
		}
	}

	return tr.result(d.Name(), nil, false)
}
