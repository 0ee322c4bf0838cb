package search

import (
	"testing"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// simpleGraph is the six-node demo graph used across the algorithm tests.
//
//	A - B - D
//	|   |
//	C   E
//	 \ / \
//	  F---'
func simpleGraph() models.Graph {
	return models.Graph{
		"A": {"B", "C"},
		"B": {"A", "D", "E"},
		"C": {"A", "F"},
		"D": {"B"},
		"E": {"B", "F"},
		"F": {"C", "E"},
	}
}

// simpleWeights makes A->C->F (cost 5) cheaper than any route through B.
func simpleWeights() models.Weights {
	return models.Weights{
		{From: "A", To: "B"}: 4,
		{From: "A", To: "C"}: 2,
		{From: "C", To: "F"}: 3,
	}
}

// goalHeuristic estimates remaining cost to F.
func goalHeuristic() models.Heuristic {
	return models.Heuristic{
		"A": 4,
		"B": 3,
		"C": 1,
		"D": 5,
		"E": 1,
		"F": 0,
	}
}

func tracedOpts(w models.Weights, h models.Heuristic) models.Options {
	return models.Options{Weights: w, Heuristic: h, Trace: true}
}

func assertPath(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("path length: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path: got %v, want %v", got, want)
		}
	}
}

func assertStrings(t *testing.T, name string, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
	}
}

func assertEdges(t *testing.T, got []models.TreeEdge, want ...models.TreeEdge) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("tree edges: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tree edges: got %v, want %v", got, want)
		}
	}
}

// assertParent checks one parent-map entry, where want == "" means the
// explicit nil entry of the start node.
func assertParent(t *testing.T, parent map[string]*string, child, want string) {
	t.Helper()
	p, ok := parent[child]
	if !ok {
		t.Fatalf("parent map missing %q: %v", child, parent)
	}
	if want == "" {
		if p != nil {
			t.Fatalf("parent of %q: got %q, want nil", child, *p)
		}
		return
	}
	if p == nil || *p != want {
		got := "<nil>"
		if p != nil {
			got = *p
		}
		t.Fatalf("parent of %q: got %q, want %q", child, got, want)
	}
}

// assertStepLogShape checks the invariants every traced run must satisfy:
// contiguous indices, a terminal goal_found step on success, and parent
// maps that only ever grow.
func assertStepLogShape(t *testing.T, res models.SearchResult) {
	t.Helper()
	for i, s := range res.Steps {
		if s.Index != i {
			t.Fatalf("step %d has index %d", i, s.Index)
		}
	}
	if res.Success {
		last := res.Steps[len(res.Steps)-1]
		if last.Action != models.ActionGoalFound {
			t.Fatalf("final step action: got %q, want %q", last.Action, models.ActionGoalFound)
		}
		if last.Node != res.Path[len(res.Path)-1] {
			t.Fatalf("final step node %q != path end %q", last.Node, res.Path[len(res.Path)-1])
		}
	}
	for i := 1; i < len(res.Steps); i++ {
		if len(res.Steps[i].Parent) < len(res.Steps[i-1].Parent) {
			t.Fatalf("parent map shrank between steps %d and %d", i-1, i)
		}
	}
}
