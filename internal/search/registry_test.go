package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/pathtraceio/pathtrace/internal/models"
)

func TestNew_AllRegisteredNames(t *testing.T) {
	g := simpleGraph()

	for _, name := range Names() {
		algo, err := New(name, g)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if algo.Name() != name {
			t.Errorf("Name(): got %q, want %q", algo.Name(), name)
		}
	}
}

func TestNew_CaseInsensitive(t *testing.T) {
	algo, err := New("BFS", simpleGraph())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if algo.Name() != "bfs" {
		t.Errorf("got %q, want bfs", algo.Name())
	}
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := New("simulated-annealing", simpleGraph())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, models.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	// The message enumerates the valid names for the caller.
	if !strings.Contains(err.Error(), "bfs, dfs, dijkstra, astar, greedy") {
		t.Errorf("error should list valid names: %v", err)
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	first := Names()
	first[0] = "tampered"

	if Names()[0] != "bfs" {
		t.Error("Names must return a fresh copy")
	}
}
