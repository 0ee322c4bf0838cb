package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathtraceio/pathtrace/client"
)

func newSearchCmd() *cobra.Command {
	var (
		inputPath string
		example   string
		algorithm string
		start     string
		goal      string
		noSteps   bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run an instrumented search and print the result with its trace",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			req, err := resolveSearchInput(ctx, inputPath, example, algorithm, start, goal)
			if err != nil {
				fatal("search", err)
			}

			res, err := apiClient.Search.Run(ctx, req)
			if err != nil {
				fatal("search", err)
			}
			if noSteps {
				res.Steps = nil
			}

			if flagFmt == "table" {
				printSearchTable(res)
				return
			}
			output(res)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "JSON input file with graph, start and goal (\"-\" for stdin)")
	cmd.Flags().StringVar(&example, "example", "", "Use a named server example graph instead of --input")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Search algorithm: bfs|dfs|dijkstra|astar|greedy")
	cmd.Flags().StringVar(&start, "start", "", "Start node (overrides input)")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal node (overrides input)")
	cmd.Flags().BoolVar(&noSteps, "no-steps", false, "Omit the step trace from output")
	return cmd
}

func printSearchTable(res *client.SearchResult) {
	fmt.Printf("algorithm: %s  success: %v  path: %s\n",
		res.Algorithm, res.Success, strings.Join(res.Path, " -> "))
	if res.Distance != nil {
		fmt.Printf("distance: %g\n", *res.Distance)
	}
	if res.Cost != nil {
		fmt.Printf("cost: %g\n", *res.Cost)
	}
	if len(res.Steps) == 0 {
		return
	}

	headers := []string{"STEP", "ACTION", "NODE", "FRONTIER", "VISITED"}
	var rows [][]string
	for _, s := range res.Steps {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Action,
			s.Node,
			strings.Join(s.Frontier, ","),
			strings.Join(s.Visited, ","),
		})
	}
	formatTable(headers, rows)
}
