// Package bench measures search implementations and recommends which one
// to use for a given graph size.
package bench

import (
	"math"
	"slices"
	"time"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// Runner is any search implementation the benchmark can time.
type Runner func(start, goal string, opts models.Options) models.SearchResult

// Measurement augments a search result with timing and size metrics.
type Measurement struct {
	models.SearchResult

	ExecutionTimeMS float64 `json:"execution_time_ms"`
	NodesExplored   int     `json:"nodes_explored"`
	PathLength      int     `json:"path_length"`
}

// Run executes a single implementation and wraps its result with wall-clock
// duration and size metrics. The run is untraced so the measurement
// reflects the traversal, not snapshot copying.
func Run(run Runner, start, goal string, opts models.Options) Measurement {
	opts.Trace = false

	began := time.Now()
	result := run(start, goal, opts)
	elapsed := time.Since(began)

	return Measurement{
		SearchResult:    result,
		ExecutionTimeMS: round4(float64(elapsed.Nanoseconds()) / 1e6),
		NodesExplored:   len(result.Visited),
		PathLength:      len(result.Path),
	}
}

// Comparison reports two implementations run on identical input.
type Comparison struct {
	Custom  Measurement `json:"custom"`
	Library Measurement `json:"library"`

	// Speedup is custom time over library time; 0 when the library run was
	// too fast to measure.
	Speedup float64 `json:"speedup"`

	// SameResult is path equality. Implementations may legitimately differ
	// on equal-cost ties.
	SameResult bool `json:"same_result"`
}

// Compare runs the custom and library implementations sequentially on the
// same input and reports relative speed and result equivalence.
func Compare(custom, library Runner, start, goal string, opts models.Options) Comparison {
	customM := Run(custom, start, goal, opts)
	libraryM := Run(library, start, goal, opts)

	var speedup float64
	if libraryM.ExecutionTimeMS > 0 {
		speedup = math.Round(customM.ExecutionTimeMS/libraryM.ExecutionTimeMS*100) / 100
	}

	return Comparison{
		Custom:     customM,
		Library:    libraryM,
		Speedup:    speedup,
		SameResult: slices.Equal(customM.Path, libraryM.Path),
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
