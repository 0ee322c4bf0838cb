package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathtraceio/pathtrace/client"
)

func newTreeCmd() *cobra.Command {
	var (
		inputPath string
		start     string
		maxDepth  int
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Generate a state-space tree from a graph",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if inputPath == "" {
				fatal("tree", fmt.Errorf("--input is required"))
			}
			in, err := readInput(inputPath)
			if err != nil {
				fatal("tree", err)
			}

			req := &client.TreeRequest{Graph: in.Graph, Start: in.Start}
			if start != "" {
				req.Start = start
			}
			if cmd.Flags().Changed("max-depth") {
				req.MaxDepth = &maxDepth
			}

			res, err := apiClient.Tree.Generate(ctx, req)
			if err != nil {
				fatal("tree", err)
			}

			if flagFmt == "table" {
				printTreeTable(res)
				return
			}
			output(res)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "JSON input file with graph and start (\"-\" for stdin)")
	cmd.Flags().StringVar(&start, "start", "", "Root node (overrides input)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum tree depth")
	return cmd
}

func printTreeTable(res *client.TreeResult) {
	fmt.Printf("nodes: %d  max_depth: %d\n", len(res.Nodes), res.MaxDepth)

	headers := []string{"PARENT", "CHILD"}
	var rows [][]string
	for _, e := range res.TreeEdges {
		rows = append(rows, []string{e[0], e[1]})
	}
	formatTable(headers, rows)
}
