package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pathtraceio/pathtrace/internal/api"
	"github.com/pathtraceio/pathtrace/internal/models"
	"github.com/pathtraceio/pathtrace/internal/search"
)

func TestTreeGenerate_DefaultDepth(t *testing.T) {
	t.Parallel()

	var gotDepth int
	svc := &mockSearchService{
		treeFn: func(_ context.Context, req models.TreeRequest, maxDepth int) models.TreeResult {
			gotDepth = maxDepth
			return models.TreeResult{
				TreeEdges: []models.TreeEdge{{"A", "B"}},
				Nodes:     []string{"A", "B"},
				MaxDepth:  maxDepth,
			}
		},
	}

	r := newTestRouter()
	h := api.NewTreeHandler(svc, testLogger(), 10, 100)
	r.POST("/tree", h.Generate)

	w := doRequest(r, http.MethodPost, "/tree", validTreeBody)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotDepth != search.DefaultTreeDepth {
		t.Errorf("expected default depth %d, got %d", search.DefaultTreeDepth, gotDepth)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := body["tree_edges"]; !ok {
		t.Errorf("missing tree_edges: %v", body)
	}
}

func TestTreeGenerate_ExplicitDepth(t *testing.T) {
	t.Parallel()

	var gotDepth int
	svc := &mockSearchService{
		treeFn: func(_ context.Context, _ models.TreeRequest, maxDepth int) models.TreeResult {
			gotDepth = maxDepth
			return models.TreeResult{MaxDepth: maxDepth}
		},
	}

	r := newTestRouter()
	h := api.NewTreeHandler(svc, testLogger(), 10, 100)
	r.POST("/tree", h.Generate)

	body := `{"graph":{"A":["B"]},"start":"A","max_depth":3}`
	w := doRequest(r, http.MethodPost, "/tree", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotDepth != 3 {
		t.Errorf("expected depth 3, got %d", gotDepth)
	}
}

func TestTreeGenerate_DepthAboveServerLimit(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewTreeHandler(&mockSearchService{}, testLogger(), 10, 100)
	r.POST("/tree", h.Generate)

	body := `{"graph":{"A":["B"]},"start":"A","max_depth":11}`
	w := doRequest(r, http.MethodPost, "/tree", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTreeGenerate_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: "{"},
		{name: "missing start", body: `{"graph":{"A":["B"]}}`},
		{name: "empty graph", body: `{"graph":{},"start":"A"}`},
		{name: "negative depth", body: `{"graph":{"A":["B"]},"start":"A","max_depth":-1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter()
			h := api.NewTreeHandler(&mockSearchService{}, testLogger(), 10, 100)
			r.POST("/tree", h.Generate)

			w := doRequest(r, http.MethodPost, "/tree", tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
