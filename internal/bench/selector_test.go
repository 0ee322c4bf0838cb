package bench

import "testing"

func TestRecommend(t *testing.T) {
	tests := []struct {
		name       string
		algorithm  string
		graphSize  int
		useLibrary bool
		want       string
	}{
		{name: "explicit override wins", algorithm: "bfs", graphSize: 10, useLibrary: true, want: StrategyLibrary},
		{name: "large graph", algorithm: "bfs", graphSize: 1001, want: StrategyLibrary},
		{name: "boundary large graph stays medium", algorithm: "bfs", graphSize: 1000, want: StrategyCustom},
		{name: "small graph", algorithm: "dijkstra", graphSize: 99, want: StrategyCustom},
		{name: "medium dijkstra", algorithm: "dijkstra", graphSize: 500, want: StrategyLibrary},
		{name: "medium astar", algorithm: "astar", graphSize: 100, want: StrategyLibrary},
		{name: "medium astar case-insensitive", algorithm: "AStar", graphSize: 500, want: StrategyLibrary},
		{name: "medium bfs", algorithm: "bfs", graphSize: 500, want: StrategyCustom},
		{name: "medium greedy", algorithm: "greedy", graphSize: 500, want: StrategyCustom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Recommend(tc.algorithm, tc.graphSize, tc.useLibrary)
			if got != tc.want {
				t.Errorf("Recommend(%q, %d, %v) = %q, want %q",
					tc.algorithm, tc.graphSize, tc.useLibrary, got, tc.want)
			}
		})
	}
}
