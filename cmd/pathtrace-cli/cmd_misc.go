package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List available search algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			names, err := apiClient.Algorithms(context.Background())
			if err != nil {
				fatal("algorithms", err)
			}
			if flagFmt == "table" {
				for _, n := range names {
					fmt.Println(n)
				}
				return
			}
			output(map[string][]string{"algorithms": names})
		},
	}
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the server's built-in example graphs",
		Run: func(cmd *cobra.Command, args []string) {
			examples, err := apiClient.Examples(context.Background())
			if err != nil {
				fatal("examples", err)
			}
			if flagFmt == "table" {
				headers := []string{"NAME", "NODES", "START", "GOAL"}
				var rows [][]string
				for name, ex := range examples {
					rows = append(rows, []string{name, fmt.Sprintf("%d", len(ex.Graph)), ex.Start, ex.Goal})
				}
				formatTable(headers, rows)
				return
			}
			output(examples)
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server liveness",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			output(resp)
		},
	}
}
