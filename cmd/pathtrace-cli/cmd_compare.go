package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pathtraceio/pathtrace/client"
)

func newCompareCmd() *cobra.Command {
	var (
		inputPath string
		example   string
		algorithm string
		start     string
		goal      string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Benchmark the custom implementation against the library one",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			req, err := resolveSearchInput(ctx, inputPath, example, algorithm, start, goal)
			if err != nil {
				fatal("compare", err)
			}

			report, err := apiClient.Search.Compare(ctx, req)
			if err != nil {
				fatal("compare", err)
			}

			if flagFmt == "table" {
				printCompareTable(report)
				return
			}
			output(report)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "JSON input file with graph, start and goal (\"-\" for stdin)")
	cmd.Flags().StringVar(&example, "example", "", "Use a named server example graph instead of --input")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Search algorithm: bfs|dfs|dijkstra|astar|greedy")
	cmd.Flags().StringVar(&start, "start", "", "Start node (overrides input)")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal node (overrides input)")
	return cmd
}

func printCompareTable(report *client.ComparisonReport) {
	headers := []string{"IMPL", "TIME_MS", "NODES", "PATH_LEN"}
	rows := [][]string{
		{"custom", fmt.Sprintf("%.4f", report.Custom.ExecutionTimeMS),
			strconv.Itoa(report.Custom.NodesExplored), strconv.Itoa(report.Custom.PathLength)},
		{"library", fmt.Sprintf("%.4f", report.Library.ExecutionTimeMS),
			strconv.Itoa(report.Library.NodesExplored), strconv.Itoa(report.Library.PathLength)},
	}
	formatTable(headers, rows)
	fmt.Printf("speedup: %.2fx  same_result: %v  recommended: %s\n",
		report.Speedup, report.SameResult, report.Recommended)
}
