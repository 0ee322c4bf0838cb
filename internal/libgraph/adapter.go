// Package libgraph adapts gonum's graph algorithms to the engine's result
// contract. It fills the role of a production-grade alternative to the
// instrumented implementations in internal/search: same inputs, same
// SearchResult shape, but the traversal internals belong to the library
// and no step trace is produced.
package libgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// Adapter converts an adjacency-list graph into gonum form and runs the
// library's searches over it.
type Adapter struct {
	src    models.Graph
	ids    map[string]int64
	labels map[int64]string
	order  []string // labels in deterministic assignment order
}

// New creates an Adapter over the given graph. Node IDs are assigned in
// adjacency order (keys sorted, then neighbor order) so repeated runs over
// the same input build identical structures.
func New(g models.Graph) *Adapter {
	a := &Adapter{
		src:    g,
		ids:    make(map[string]int64),
		labels: make(map[int64]string),
	}

	for _, node := range sortedKeys(g) {
		a.intern(node)
		for _, neighbor := range g[node] {
			a.intern(neighbor)
		}
	}

	return a
}

func (a *Adapter) intern(label string) int64 {
	if id, ok := a.ids[label]; ok {
		return id
	}

	id := int64(len(a.order))
	a.ids[label] = id
	a.labels[id] = label
	a.order = append(a.order, label)

	return id
}

// build materializes a weighted directed gonum graph. Self-loops are
// skipped: simple graphs reject them and the search semantics never
// follow one anyway.
func (a *Adapter) build(weights models.Weights) *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))

	for _, label := range a.order {
		wg.AddNode(simple.Node(a.ids[label]))
	}

	for _, from := range sortedKeys(a.src) {
		for _, to := range a.src[from] {
			if from == to {
				continue
			}

			wg.SetWeightedEdge(wg.NewWeightedEdge(
				simple.Node(a.ids[from]),
				simple.Node(a.ids[to]),
				weights.Get(from, to),
			))
		}
	}

	return wg
}

// Search dispatches to the library implementation of the named algorithm.
// Unknown names fail with models.ErrUnknownAlgorithm, mirroring the
// registry.
func (a *Adapter) Search(algorithm, start, goal string, opts models.Options) (models.SearchResult, error) {
	switch algorithm {
	case "bfs":
		return a.BFS(start, goal), nil
	case "dfs":
		return a.DFS(start, goal), nil
	case "dijkstra":
		return a.Dijkstra(start, goal, opts.Weights), nil
	case "astar":
		return a.AStar(start, goal, opts.Weights, opts.Heuristic), nil
	case "greedy":
		return a.Greedy(start, goal, opts.Heuristic), nil
	default:
		return models.SearchResult{}, fmt.Errorf("%w: %q", models.ErrUnknownAlgorithm, algorithm)
	}
}

// BFS runs the library's breadth-first traversal, stopping at goal.
func (a *Adapter) BFS(start, goal string) models.SearchResult {
	return a.walk("gonum-bfs", start, goal, func(wg *simple.WeightedDirectedGraph, rec *recorder) graph.Node {
		bf := traverse.BreadthFirst{
			Visit:    rec.visit,
			Traverse: rec.traverse,
		}

		return bf.Walk(wg, simple.Node(a.ids[start]), func(n graph.Node, _ int) bool {
			return a.labels[n.ID()] == goal
		})
	})
}

// DFS runs the library's depth-first traversal, stopping at goal.
func (a *Adapter) DFS(start, goal string) models.SearchResult {
	return a.walk("gonum-dfs", start, goal, func(wg *simple.WeightedDirectedGraph, rec *recorder) graph.Node {
		df := traverse.DepthFirst{
			Visit:    rec.visit,
			Traverse: rec.traverse,
		}

		return df.Walk(wg, simple.Node(a.ids[start]), func(n graph.Node) bool {
			return a.labels[n.ID()] == goal
		})
	})
}

// Dijkstra runs the library's shortest-path search and reports the total
// distance as the result extra.
func (a *Adapter) Dijkstra(start, goal string, weights models.Weights) models.SearchResult {
	wg := a.build(weights)

	shortest := path.DijkstraFrom(simple.Node(a.ids[start]), wg)
	nodes, dist := shortest.To(a.ids[goal])

	result := a.pathResult("gonum-dijkstra", start, nodes, dist)
	result.Visited = a.reachable(shortest)

	if result.Success {
		result.Distance = &dist
	}

	return result
}

// AStar runs the library's A* with the supplied heuristic table. Like the
// custom implementation, an absent entry estimates 0.
func (a *Adapter) AStar(start, goal string, weights models.Weights, heuristic models.Heuristic) models.SearchResult {
	wg := a.build(weights)

	h := func(x, _ graph.Node) float64 {
		return heuristic.Get(a.labels[x.ID()])
	}

	shortest, _ := path.AStar(simple.Node(a.ids[start]), simple.Node(a.ids[goal]), wg, h)
	nodes, cost := shortest.To(a.ids[goal])

	result := a.pathResult("gonum-astar", start, nodes, cost)

	// A* explores goal-directed, so approximate the visited set with the
	// full shortest-path exploration, as the reference adapter did.
	result.Visited = a.reachable(path.DijkstraFrom(simple.Node(a.ids[start]), wg))

	if result.Success {
		result.Cost = &cost
	}

	return result
}

// walk is the shared scaffolding for the two uninformed traversals.
func (a *Adapter) walk(name, start, goal string, run func(*simple.WeightedDirectedGraph, *recorder) graph.Node) models.SearchResult {
	wg := a.build(nil)
	rec := &recorder{adapter: a, parent: map[string]*string{start: nil}, edges: []models.TreeEdge{}}

	final := run(wg, rec)

	result := models.SearchResult{
		Path:      []string{},
		Visited:   rec.visited,
		Success:   final != nil,
		Algorithm: name,
		Parent:    rec.parent,
		TreeEdges: rec.edges,
	}

	if final != nil {
		result.Path = reconstruct(rec.parent, start, a.labels[final.ID()])
	}

	return result
}

// pathResult converts a library path into the result contract, deriving
// parent pointers and tree edges along the returned path.
func (a *Adapter) pathResult(name, start string, nodes []graph.Node, weight float64) models.SearchResult {
	result := models.SearchResult{
		Path:      []string{},
		Visited:   []string{},
		Success:   len(nodes) > 0 && !math.IsInf(weight, 1),
		Algorithm: name,
		Parent:    map[string]*string{start: nil},
		TreeEdges: []models.TreeEdge{},
	}

	if !result.Success {
		return result
	}

	for i, n := range nodes {
		label := a.labels[n.ID()]
		result.Path = append(result.Path, label)

		if i > 0 {
			prev := a.labels[nodes[i-1].ID()]
			p := prev
			result.Parent[label] = &p
			result.TreeEdges = append(result.TreeEdges, models.TreeEdge{prev, label})
		}
	}

	return result
}

// reachable lists every label the shortest-path tree reached, in the
// adapter's deterministic label order.
func (a *Adapter) reachable(shortest path.Shortest) []string {
	visited := []string{}

	for _, label := range a.order {
		if !math.IsInf(shortest.WeightTo(a.ids[label]), 1) {
			visited = append(visited, label)
		}
	}

	return visited
}

// recorder captures visit order and first-discovery parents during a
// library traversal.
type recorder struct {
	adapter *Adapter
	visited []string
	parent  map[string]*string
	edges   []models.TreeEdge
}

func (r *recorder) visit(n graph.Node) {
	r.visited = append(r.visited, r.adapter.labels[n.ID()])
}

func (r *recorder) traverse(e graph.Edge) bool {
	to := r.adapter.labels[e.To().ID()]
	if _, ok := r.parent[to]; !ok {
		from := r.adapter.labels[e.From().ID()]
		p := from
		r.parent[to] = &p
		r.edges = append(r.edges, models.TreeEdge{from, to})
	}

	return true
}

// reconstruct walks parent pointers from goal back to start.
func reconstruct(parent map[string]*string, start, goal string) []string {
	trail := []string{goal}

	for current := goal; current != start; {
		p, ok := parent[current]
		if !ok || p == nil {
			break
		}

		trail = append(trail, *p)
		current = *p
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail
}
