package search

import (
	"fmt"
	"strings"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// Constructor builds an Algorithm over a graph.
type Constructor func(models.Graph) Algorithm

// registry is the single source of truth for what algorithms exist. Built
// once at init and never mutated, so concurrent reads need no locking.
var registry = map[string]Constructor{
	"bfs":      func(g models.Graph) Algorithm { return NewBreadthFirst(g) },
	"dfs":      func(g models.Graph) Algorithm { return NewDepthFirst(g) },
	"dijkstra": func(g models.Graph) Algorithm { return NewDijkstra(g) },
	"astar":    func(g models.Graph) Algorithm { return NewAStar(g) },
	"greedy":   func(g models.Graph) Algorithm { return NewGreedyBestFirst(g) },
}

// names holds the registry keys in canonical presentation order.
var names = []string{"bfs", "dfs", "dijkstra", "astar", "greedy"}

// New resolves a case-insensitive algorithm name to a fresh instance over
// the given graph. Unknown names fail with models.ErrUnknownAlgorithm and
// the valid names enumerated; no default is ever substituted.
func New(name string, g models.Graph) (Algorithm, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", models.ErrUnknownAlgorithm, name, strings.Join(names, ", "))
	}

	return ctor(g), nil
}

// Names returns the valid algorithm names.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)

	return out
}
