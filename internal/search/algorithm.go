// Package search implements the instrumented graph-search algorithms: the
// five traversal strategies, the state-space tree generator and the
// algorithm registry.
//
// Every invocation is single-threaded and synchronous: state is local to
// the call, so concurrent searches need no locking as long as each is given
// its own options and the caller does not mutate the graph mid-search.
package search

import "github.com/pathtraceio/pathtrace/internal/models"

// Algorithm is the common contract all traversal strategies implement.
type Algorithm interface {
	// Name returns the registry name of the algorithm.
	Name() string

	// Search runs the traversal from start to goal. An unreachable goal is
	// a normal outcome: Success is false, Path is empty and Visited holds
	// the reachable component of start.
	Search(start, goal string, opts models.Options) models.SearchResult
}
