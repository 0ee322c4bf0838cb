package ws

import (
	"sync/atomic"
	"time"
)

// Event types broadcast to visualization clients.
const (
	EventSearchStarted   = "search_started"
	EventSearchCompleted = "search_completed"
	EventTreeGenerated   = "tree_generated"
)

// Event is the structured message sent to WebSocket clients.
type Event struct {
	Type string    `json:"type"`
	ID   uint64    `json:"id"`
	Data any       `json:"data"`
	Time time.Time `json:"time"`
}

// SearchStartedData announces a search that just began.
type SearchStartedData struct {
	Algorithm string `json:"algorithm"`
	Start     string `json:"start"`
	Goal      string `json:"goal"`
	GraphSize int    `json:"graph_size"`
}

// SearchCompletedData summarizes a finished search.
type SearchCompletedData struct {
	Algorithm     string  `json:"algorithm"`
	Success       bool    `json:"success"`
	PathLength    int     `json:"path_length"`
	NodesExplored int     `json:"nodes_explored"`
	Steps         int     `json:"steps"`
	DurationMS    float64 `json:"duration_ms"`
}

// TreeGeneratedData summarizes a generated state-space tree.
type TreeGeneratedData struct {
	Start    string `json:"start"`
	MaxDepth int    `json:"max_depth"`
	Edges    int    `json:"edges"`
	Nodes    int    `json:"nodes"`
}

// EventSequence hands out monotonic event IDs.
type EventSequence struct {
	counter atomic.Uint64
}

// NewEventSequence creates a new EventSequence.
func NewEventSequence() *EventSequence {
	return &EventSequence{}
}

// Next returns the next sequence number.
func (es *EventSequence) Next() uint64 {
	return es.counter.Add(1)
}
