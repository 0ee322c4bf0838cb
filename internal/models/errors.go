package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for request validation.
var (
	ErrMissingStart = errors.New("start is required")
	ErrMissingGoal  = errors.New("goal is required")
	ErrEmptyGraph   = errors.New("graph must not be empty")
)

// ErrUnknownAlgorithm indicates a name the registry does not recognize
// (maps to HTTP 400 with the valid names enumerated).
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrNegativeValue returns an error indicating a weight or heuristic entry
// is negative.
func ErrNegativeValue(kind, key string) error {
	return fmt.Errorf("%s for %q must be non-negative", kind, key)
}
