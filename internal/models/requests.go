package models

import (
	"fmt"
	"strings"
)

// maxNodeLabelLen caps the length of a single node label.
const maxNodeLabelLen = 255

// SearchRequest is the payload for running a search. Weights arrive keyed
// as "A-B" strings and are parsed into ordered pairs before reaching the
// algorithms.
type SearchRequest struct {
	Algorithm string             `json:"algorithm"`
	Graph     Graph              `json:"graph"`
	Start     string             `json:"start"`
	Goal      string             `json:"goal"`
	Weights   map[string]float64 `json:"weights,omitempty"`
	Heuristic map[string]float64 `json:"heuristic,omitempty"`
}

// Validate checks that required fields are present and that weight and
// heuristic values are non-negative.
func (r *SearchRequest) Validate() error {
	if r.Start == "" {
		return ErrMissingStart
	}

	if r.Goal == "" {
		return ErrMissingGoal
	}

	if len(r.Graph) == 0 {
		return ErrEmptyGraph
	}

	if err := validateLabels(r.Graph); err != nil {
		return err
	}

	for edge, w := range r.Weights {
		if w < 0 {
			return ErrNegativeValue("weight", edge)
		}
	}

	for node, h := range r.Heuristic {
		if h < 0 {
			return ErrNegativeValue("heuristic", node)
		}
	}

	return nil
}

// ParsedWeights converts the "A-B" keyed weight map into ordered-pair form.
// Keys without a separator are ignored, matching the historical behavior.
func (r *SearchRequest) ParsedWeights() Weights {
	if len(r.Weights) == 0 {
		return nil
	}

	weights := make(Weights, len(r.Weights))

	for edge, w := range r.Weights {
		from, to, ok := strings.Cut(edge, "-")
		if !ok {
			continue
		}

		weights[EdgeKey{From: from, To: to}] = w
	}

	return weights
}

// Options assembles the algorithm options from the request. Trace is set by
// the caller depending on whether it wants the step log.
func (r *SearchRequest) Options(trace bool) Options {
	return Options{
		Weights:   r.ParsedWeights(),
		Heuristic: Heuristic(r.Heuristic),
		Trace:     trace,
	}
}

// TreeRequest is the payload for generating a state-space tree.
type TreeRequest struct {
	Graph    Graph  `json:"graph"`
	Start    string `json:"start"`
	MaxDepth *int   `json:"max_depth,omitempty"`
}

// Validate checks required tree-generation fields.
func (r *TreeRequest) Validate() error {
	if r.Start == "" {
		return ErrMissingStart
	}

	if len(r.Graph) == 0 {
		return ErrEmptyGraph
	}

	if r.MaxDepth != nil && *r.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative")
	}

	return validateLabels(r.Graph)
}

func validateLabels(g Graph) error {
	for node, neighbors := range g {
		if len(node) > maxNodeLabelLen {
			return fmt.Errorf("node label exceeds maximum length of %d", maxNodeLabelLen)
		}

		for _, n := range neighbors {
			if len(n) > maxNodeLabelLen {
				return fmt.Errorf("node label exceeds maximum length of %d", maxNodeLabelLen)
			}
		}
	}

	return nil
}
