package client

// Graph is an adjacency-list graph keyed by node label.
type Graph map[string][]string

// TreeEdge is a directed parent-to-child edge.
type TreeEdge [2]string

// SearchRequest is the payload for POST /api/v1/search and /api/v1/search/compare.
type SearchRequest struct {
	Algorithm string             `json:"algorithm"`
	Graph     Graph              `json:"graph"`
	Start     string             `json:"start"`
	Goal      string             `json:"goal"`
	Weights   map[string]float64 `json:"weights,omitempty"`
	Heuristic map[string]float64 `json:"heuristic,omitempty"`
}

// SearchStep is one recorded step of an instrumented search run.
type SearchStep struct {
	Index     int                `json:"step_number"`
	Node      string             `json:"current_node"`
	Action    string             `json:"action"`
	Path      []string           `json:"path_so_far"`
	Visited   []string           `json:"visited"`
	Frontier  []string           `json:"frontier"`
	Parent    map[string]*string `json:"parent"`
	TreeEdges []TreeEdge         `json:"tree_edges"`
	Extra     map[string]float64 `json:"extra,omitempty"`
}

// SearchResult is the outcome of a search run with its full trace.
type SearchResult struct {
	Path      []string           `json:"path"`
	Visited   []string           `json:"visited"`
	Success   bool               `json:"success"`
	Algorithm string             `json:"algorithm"`
	Parent    map[string]*string `json:"parent"`
	TreeEdges []TreeEdge         `json:"tree_edges"`
	Steps     []SearchStep       `json:"steps,omitempty"`
	Distance  *float64           `json:"distance,omitempty"`
	Cost      *float64           `json:"cost,omitempty"`
}

// Measurement is a timed search run from the comparison endpoint.
type Measurement struct {
	SearchResult
	ExecutionTimeMS float64 `json:"execution_time_ms"`
	NodesExplored   int     `json:"nodes_explored"`
	PathLength      int     `json:"path_length"`
}

// ComparisonReport contrasts the custom and library implementations of
// one algorithm on the same graph.
type ComparisonReport struct {
	Custom      Measurement `json:"custom"`
	Library     Measurement `json:"library"`
	Speedup     float64     `json:"speedup"`
	SameResult  bool        `json:"same_result"`
	Recommended string      `json:"recommended_implementation"`
}

// TreeRequest is the payload for POST /api/v1/tree.
type TreeRequest struct {
	Graph    Graph  `json:"graph"`
	Start    string `json:"start"`
	MaxDepth *int   `json:"max_depth,omitempty"`
}

// TreeResult is a generated state-space tree.
type TreeResult struct {
	TreeEdges []TreeEdge `json:"tree_edges"`
	Nodes     []string   `json:"nodes"`
	MaxDepth  int        `json:"max_depth"`
}

// Example bundles a ready-to-run graph with endpoints, weights and heuristic values.
type Example struct {
	Graph     Graph              `json:"graph"`
	Start     string             `json:"start"`
	Goal      string             `json:"goal"`
	Weights   map[string]float64 `json:"weights"`
	Heuristic map[string]float64 `json:"heuristic"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	WSClients int    `json:"ws_clients"`
}
