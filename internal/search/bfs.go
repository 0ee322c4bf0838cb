package search

import (
	"strconv"
	"strings"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// BreadthFirst explores the graph level by level with a FIFO frontier.
// On an unweighted graph it finds a path with the minimum number of edges.
type BreadthFirst struct {
	graph models.Graph
}

// NewBreadthFirst creates a BreadthFirst over the given graph.
func NewBreadthFirst(g models.Graph) *BreadthFirst {
	return &BreadthFirst{graph: g}
}

// Name implements Algorithm.
func (b *BreadthFirst) Name() string { return "bfs" }

type bfsItem struct {
	node  string
	id    string
	path  []string
	depth int
}

// Search implements Algorithm. Frontier and closed views in the step log
// use path-qualified node IDs ("<joined path>#<node>-<depth>") so a
// renderer can distinguish the same label reached via different tree
// paths. Nodes are deduplicated at discovery time, which is what makes the
// first dequeue of the goal the shortest path by edge count.
func (b *BreadthFirst) Search(start, goal string, opts models.Options) models.SearchResult {
	tr := newTracer(start, opts.Trace)
	tr.markSeen(start)
	tr.appendVisited(start)

	startID := start + "-0"
	queue := []bfsItem{{node: start, id: startID, path: []string{start}, depth: 0}}
	openedIDs := []string{startID}
	closedIDs := []string{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		openedIDs = removeString(openedIDs, current.id)
		if !containsString(closedIDs, current.id) {
			closedIDs = append(closedIDs, current.id)
		}

		tr.appendVisited(current.node)

		for _, neighbor := range b.graph.Neighbors(current.node) {
			if !tr.markSeen(neighbor) {
				continue
			}

			tr.setParent(neighbor, current.node)

			neighborID := strings.Join(current.path, "") + "#" + neighbor + "-" + strconv.Itoa(current.depth+1)
			queue = append(queue, bfsItem{
				node:  neighbor,
				id:    neighborID,
				path:  appendPath(current.path, neighbor),
				depth: current.depth + 1,
			})
			openedIDs = append(openedIDs, neighborID)
		}

		tr.record(models.ActionVisit, current.node, current.path, closedIDs, openedIDs, nil)

		if current.node == goal {
			tr.record(models.ActionGoalFound, current.node, current.path, closedIDs, openedIDs, nil)

			return tr.result(b.Name(), current.path, true)
		}
	}

	return tr.result(b.Name(), nil, false)
}
