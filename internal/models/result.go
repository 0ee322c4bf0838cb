package models

// SearchResult is the terminal record of one search invocation. It is
// created fresh per invocation and never mutated after the algorithm
// returns.
type SearchResult struct {
	Path      []string           `json:"path"`
	Visited   []string           `json:"visited"`
	Success   bool               `json:"success"`
	Algorithm string             `json:"algorithm"`
	Parent    map[string]*string `json:"parent"`
	TreeEdges []TreeEdge         `json:"tree_edges"`
	Steps     []SearchStep       `json:"steps,omitempty"`

	// Distance is the total path weight reported by Dijkstra.
	Distance *float64 `json:"distance,omitempty"`

	// Cost is the accumulated path cost reported by A*.
	Cost *float64 `json:"cost,omitempty"`
}

// TreeResult is the output of the state-space tree generator.
type TreeResult struct {
	TreeEdges []TreeEdge `json:"tree_edges"`
	Nodes     []string   `json:"nodes"`
	MaxDepth  int        `json:"max_depth"`
}
