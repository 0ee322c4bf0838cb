package bench

import "strings"

// Implementation strategy labels.
const (
	StrategyCustom  = "custom"
	StrategyLibrary = "library"
)

// Selector thresholds, in node counts.
const (
	// largeGraphNodes: above this the library implementation wins on raw
	// speed regardless of algorithm.
	largeGraphNodes = 1000

	// smallGraphNodes: below this the instrumented custom implementation
	// is preferred; its step trace is the whole point at teaching scale.
	smallGraphNodes = 100
)

// Recommend maps (algorithm, graph size, explicit override) to an
// implementation strategy. Medium graphs favor the library only for the
// priority-queue-based algorithms. This is advisory policy, not enforced
// routing.
func Recommend(algorithm string, graphSize int, useLibrary bool) string {
	if useLibrary {
		return StrategyLibrary
	}

	if graphSize > largeGraphNodes {
		return StrategyLibrary
	}

	if graphSize < smallGraphNodes {
		return StrategyCustom
	}

	switch strings.ToLower(algorithm) {
	case "dijkstra", "astar":
		return StrategyLibrary
	}

	return StrategyCustom
}
