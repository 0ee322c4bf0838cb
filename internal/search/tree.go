package search

import "github.com/pathtraceio/pathtrace/internal/models"

// DefaultTreeDepth is the depth bound used when the caller does not supply one.
const DefaultTreeDepth = 5

// GenerateTree performs a bounded-depth exhaustive breadth-first expansion
// from start, with no goal and no visited-deduplication across branches:
// the same label may appear in multiple branches so a renderer can show
// the full branching structure. A neighbor is skipped only when it already
// appears as an ancestor within its own branch, which prevents cycles
// along a path without suppressing legitimate re-visits elsewhere.
//
// Output is deterministic for fixed input: edges in expansion order, node
// labels in first-encounter order.
func GenerateTree(g models.Graph, start string, maxDepth int) models.TreeResult {
	type item struct {
		node      string
		depth     int
		ancestors []string
	}

	edges := []models.TreeEdge{}
	nodes := []string{start}
	seen := map[string]bool{start: true}
	queue := []item{{node: start, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.depth >= maxDepth {
			continue
		}

		for _, neighbor := range g.Neighbors(current.node) {
			if containsString(current.ancestors, neighbor) {
				continue
			}

			edges = append(edges, models.TreeEdge{current.node, neighbor})

			if !seen[neighbor] {
				seen[neighbor] = true
				nodes = append(nodes, neighbor)
			}

			queue = append(queue, item{
				node:      neighbor,
				depth:     current.depth + 1,
				ancestors: appendPath(current.ancestors, current.node),
			})
		}
	}

	return models.TreeResult{
		TreeEdges: edges,
		Nodes:     nodes,
		MaxDepth:  maxDepth,
	}
}
