package search

import (
	"testing"

	"github.com/pathtraceio/pathtrace/internal/models"
)

func TestBreadthFirst_ShortestEdgeCount(t *testing.T) {
	res := NewBreadthFirst(simpleGraph()).Search("A", "F", tracedOpts(nil, nil))

	if !res.Success {
		t.Fatal("expected success")
	}
	assertPath(t, res.Path, "A", "C", "F")
	assertStrings(t, "visited", res.Visited, "A", "B", "C", "D", "E", "F")

	assertParent(t, res.Parent, "A", "")
	assertParent(t, res.Parent, "B", "A")
	assertParent(t, res.Parent, "C", "A")
	assertParent(t, res.Parent, "D", "B")
	assertParent(t, res.Parent, "E", "B")
	assertParent(t, res.Parent, "F", "C")

	assertEdges(t, res.TreeEdges,
		models.TreeEdge{"A", "B"},
		models.TreeEdge{"A", "C"},
		models.TreeEdge{"B", "D"},
		models.TreeEdge{"B", "E"},
		models.TreeEdge{"C", "F"},
	)
	assertStepLogShape(t, res)
}

func TestBreadthFirst_StepLog(t *testing.T) {
	res := NewBreadthFirst(simpleGraph()).Search("A", "F", tracedOpts(nil, nil))

	// One visit step per dequeued node plus the terminal goal_found.
	if len(res.Steps) != 7 {
		t.Fatalf("expected 7 steps, got %d", len(res.Steps))
	}

	first := res.Steps[0]
	if first.Action != models.ActionVisit || first.Node != "A" {
		t.Fatalf("first step: %+v", first)
	}

	// Frontier and closed views use path-qualified IDs.
	assertStrings(t, "closed", first.Closed, "A-0")
	assertStrings(t, "frontier", first.Frontier, "A#B-1", "A#C-1")

	second := res.Steps[1]
	if second.Node != "B" {
		t.Fatalf("second step node: %q", second.Node)
	}
	assertStrings(t, "frontier", second.Frontier, "A#C-1", "AB#D-2", "AB#E-2")
}

func TestBreadthFirst_GoalIsStart(t *testing.T) {
	res := NewBreadthFirst(simpleGraph()).Search("A", "A", tracedOpts(nil, nil))

	if !res.Success {
		t.Fatal("expected success")
	}
	assertPath(t, res.Path, "A")
	assertParent(t, res.Parent, "A", "")
}

func TestBreadthFirst_Unreachable(t *testing.T) {
	g := models.Graph{"A": {"B"}, "B": {"A"}, "C": {}}

	res := NewBreadthFirst(g).Search("A", "C", tracedOpts(nil, nil))

	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Path == nil || len(res.Path) != 0 {
		t.Fatalf("expected empty non-nil path, got %#v", res.Path)
	}
	assertStrings(t, "visited", res.Visited, "A", "B")
}

func TestBreadthFirst_MissingNeighborEntry(t *testing.T) {
	// B has no adjacency entry: a dead end, not an error.
	g := models.Graph{"A": {"B"}}

	res := NewBreadthFirst(g).Search("A", "B", tracedOpts(nil, nil))

	if !res.Success {
		t.Fatal("expected success")
	}
	assertPath(t, res.Path, "A", "B")
}

func TestBreadthFirst_Untraced(t *testing.T) {
	res := NewBreadthFirst(simpleGraph()).Search("A", "F", models.Options{})

	if !res.Success {
		t.Fatal("expected success")
	}
	if len(res.Steps) != 0 {
		t.Fatalf("expected no steps without trace, got %d", len(res.Steps))
	}
	assertPath(t, res.Path, "A", "C", "F")
}
