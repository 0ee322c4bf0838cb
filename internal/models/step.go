package models

// Action tags one kind of exploration event.
type Action string

// The closed set of step actions.
const (
	ActionInitialize    Action = "initialize"
	ActionVisit         Action = "visit"
	ActionAddToFrontier Action = "add_to_frontier"
	ActionGoalFound     Action = "goal_found"
)

// TreeEdge is one discovery-tree edge as [parent, child].
type TreeEdge [2]string

// SearchStep is one observation of algorithm state at an instant. Every
// field is an independent snapshot: later mutation of the live algorithm
// state never changes an already-emitted step.
type SearchStep struct {
	Index     int                `json:"step_number"`
	Node      string             `json:"current_node"`
	Action    Action             `json:"action"`
	Path      []string           `json:"path_so_far"`
	Closed    []string           `json:"visited"`
	Frontier  []string           `json:"frontier"`
	Parent    map[string]*string `json:"parent"`
	TreeEdges []TreeEdge         `json:"tree_edges"`

	// Extra holds algorithm-specific values for this step, such as the
	// running distance, heuristic value or edge weight just applied.
	Extra map[string]float64 `json:"extra,omitempty"`
}
