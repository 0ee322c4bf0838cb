package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSearchStep_JSONShape(t *testing.T) {
	parentOfB := "A"
	step := SearchStep{
		Index:     2,
		Node:      "B",
		Action:    ActionVisit,
		Path:      []string{"A", "B"},
		Closed:    []string{"A", "B"},
		Frontier:  []string{"C"},
		Parent:    map[string]*string{"A": nil, "B": &parentOfB},
		TreeEdges: []TreeEdge{{"A", "B"}},
	}

	data, err := json.Marshal(step)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)

	// Wire names are load-bearing: the frontend replays these fields.
	for _, key := range []string{
		`"step_number":2`,
		`"current_node":"B"`,
		`"action":"visit"`,
		`"path_so_far":["A","B"]`,
		`"visited":["A","B"]`,
		`"frontier":["C"]`,
		`"tree_edges":[["A","B"]]`,
	} {
		if !strings.Contains(got, key) {
			t.Errorf("missing %s in %s", key, got)
		}
	}

	// The start node marshals to an explicit null parent.
	if !strings.Contains(got, `"A":null`) {
		t.Errorf("start parent should be null: %s", got)
	}
	// Extra is omitted when unset.
	if strings.Contains(got, `"extra"`) {
		t.Errorf("extra should be omitted when empty: %s", got)
	}
}

func TestSearchResult_OmitsOptionalFields(t *testing.T) {
	res := SearchResult{
		Path:      []string{},
		Visited:   []string{},
		Success:   false,
		Algorithm: "bfs",
		Parent:    map[string]*string{"A": nil},
		TreeEdges: []TreeEdge{},
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)

	for _, absent := range []string{`"steps"`, `"distance"`, `"cost"`} {
		if strings.Contains(got, absent) {
			t.Errorf("%s should be omitted: %s", absent, got)
		}
	}
	// Empty containers stay as [] rather than null.
	if !strings.Contains(got, `"path":[]`) {
		t.Errorf("path should marshal as []: %s", got)
	}
}
