package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "0.1.0", WSClients: 2})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.WSClients != 2 {
		t.Errorf("got ws_clients %d, want 2", resp.WSClients)
	}
}

func TestAlgorithms(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/algorithms": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string][]string{"algorithms": {"bfs", "dfs", "dijkstra", "astar", "greedy"}})
		},
	})
	names, err := c.Algorithms(context.Background())
	if err != nil {
		t.Fatalf("Algorithms() error: %v", err)
	}
	if len(names) != 5 || names[0] != "bfs" {
		t.Errorf("got %v", names)
	}
}

func TestExamples(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/examples": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]Example{
				"simple": {Graph: Graph{"A": {"B"}, "B": {"A"}}, Start: "A", Goal: "B"},
			})
		},
	})
	examples, err := c.Examples(context.Background())
	if err != nil {
		t.Fatalf("Examples() error: %v", err)
	}
	ex, ok := examples["simple"]
	if !ok {
		t.Fatalf("missing simple example: %v", examples)
	}
	if ex.Start != "A" || ex.Goal != "B" {
		t.Errorf("got start=%q goal=%q", ex.Start, ex.Goal)
	}
}

func TestSearchRun(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/search": func(w http.ResponseWriter, r *http.Request) {
			var req SearchRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			if req.Algorithm != "bfs" {
				jsonResponse(w, 400, map[string]string{"code": "bad_request", "message": "unexpected algorithm"})
				return
			}
			jsonResponse(w, 200, SearchResult{
				Path:      []string{"A", "C", "F"},
				Visited:   []string{"A", "B", "C", "F"},
				Success:   true,
				Algorithm: "bfs",
				Steps:     []SearchStep{{Index: 0, Node: "A", Action: "initialize"}},
			})
		},
	})

	res, err := c.Search.Run(context.Background(), &SearchRequest{
		Algorithm: "bfs",
		Graph:     Graph{"A": {"B", "C"}, "B": {}, "C": {"F"}, "F": {}},
		Start:     "A",
		Goal:      "F",
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if len(res.Path) != 3 || res.Path[2] != "F" {
		t.Errorf("got path %v", res.Path)
	}
	if len(res.Steps) != 1 || res.Steps[0].Action != "initialize" {
		t.Errorf("got steps %v", res.Steps)
	}
}

func TestSearchCompare(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/search/compare": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, ComparisonReport{
				Custom:      Measurement{ExecutionTimeMS: 0.42, NodesExplored: 4, PathLength: 3},
				Library:     Measurement{ExecutionTimeMS: 0.21, NodesExplored: 4, PathLength: 3},
				Speedup:     2.0,
				SameResult:  true,
				Recommended: "library",
			})
		},
	})

	report, err := c.Search.Compare(context.Background(), &SearchRequest{Algorithm: "dijkstra"})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if report.Speedup != 2.0 {
		t.Errorf("got speedup %v", report.Speedup)
	}
	if !report.SameResult || report.Recommended != "library" {
		t.Errorf("got same_result=%v recommended=%q", report.SameResult, report.Recommended)
	}
}

func TestTreeGenerate(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/tree": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, TreeResult{
				TreeEdges: []TreeEdge{{"A", "B"}, {"A", "C"}},
				Nodes:     []string{"A", "B", "C"},
				MaxDepth:  3,
			})
		},
	})

	res, err := c.Tree.Generate(context.Background(), &TreeRequest{Graph: Graph{"A": {"B", "C"}}, Start: "A"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(res.TreeEdges) != 2 || res.TreeEdges[0] != (TreeEdge{"A", "B"}) {
		t.Errorf("got edges %v", res.TreeEdges)
	}
	if res.MaxDepth != 3 {
		t.Errorf("got max depth %d", res.MaxDepth)
	}
}

func TestAPIError(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/search": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 400, map[string]string{
				"code":       "bad_request",
				"message":    "start node not in graph",
				"request_id": "req-123",
			})
		},
	})

	_, err := c.Search.Run(context.Background(), &SearchRequest{Algorithm: "bfs"})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 400 || apiErr.Code != "bad_request" {
		t.Errorf("got %d %q", apiErr.StatusCode, apiErr.Code)
	}
	if !IsBadRequest(err) {
		t.Error("IsBadRequest should be true")
	}
	if IsRateLimited(err) {
		t.Error("IsRateLimited should be false")
	}
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(502)
			w.Write([]byte("bad gateway")) //nolint:errcheck
		},
	})

	_, err := c.Health(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "unknown" || apiErr.Message != "bad gateway" {
		t.Errorf("got code=%q message=%q", apiErr.Code, apiErr.Message)
	}
}
