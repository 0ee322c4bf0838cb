// Package models defines the shared data types of the search engine.
package models

// Graph is an adjacency-list graph: node label to ordered neighbor labels.
// A neighbor referencing a label absent from the map is a dead end with no
// outgoing edges, never an error.
type Graph map[string][]string

// Neighbors returns the ordered neighbor list of node, or nil when the node
// has no entry.
func (g Graph) Neighbors(node string) []string {
	return g[node]
}

// EdgeKey identifies a directed edge for weight lookup.
type EdgeKey struct {
	From string
	To   string
}

// Weights maps directed edges to non-negative costs.
type Weights map[EdgeKey]float64

// DefaultWeight is the cost of an edge with no explicit weight.
const DefaultWeight = 1.0

// Get returns the weight of the edge from -> to, defaulting to 1 when the
// pair has no entry.
func (w Weights) Get(from, to string) float64 {
	if v, ok := w[EdgeKey{From: from, To: to}]; ok {
		return v
	}

	return DefaultWeight
}

// Heuristic maps node labels to non-negative remaining-cost estimates.
// Absent nodes estimate 0, which degrades A* to Dijkstra.
type Heuristic map[string]float64

// Get returns the heuristic value for node, defaulting to 0.
func (h Heuristic) Get(node string) float64 {
	return h[node]
}

// Options carries the per-search inputs beyond start and goal. Both maps may
// be nil; lookups fall back to their documented defaults.
type Options struct {
	Weights   Weights
	Heuristic Heuristic

	// Trace enables step recording. Benchmarks run untraced so timing
	// reflects the traversal rather than snapshot copying.
	Trace bool
}
