package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pathtraceio/pathtrace/client"
)

// inputFile is the on-disk JSON shape accepted by search, compare and tree.
// Any field may be overridden by a flag.
type inputFile struct {
	Algorithm string             `json:"algorithm"`
	Graph     client.Graph       `json:"graph"`
	Start     string             `json:"start"`
	Goal      string             `json:"goal"`
	Weights   map[string]float64 `json:"weights"`
	Heuristic map[string]float64 `json:"heuristic"`
}

// readInput decodes an input file, with "-" meaning stdin.
func readInput(path string) (*inputFile, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var in inputFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &in, nil
}

// resolveSearchInput builds a SearchRequest from --input or --example plus
// flag overrides.
func resolveSearchInput(ctx context.Context, inputPath, example, algorithm, start, goal string) (*client.SearchRequest, error) {
	req := &client.SearchRequest{}

	switch {
	case inputPath != "":
		in, err := readInput(inputPath)
		if err != nil {
			return nil, err
		}
		req.Algorithm = in.Algorithm
		req.Graph = in.Graph
		req.Start = in.Start
		req.Goal = in.Goal
		req.Weights = in.Weights
		req.Heuristic = in.Heuristic

	case example != "":
		examples, err := apiClient.Examples(ctx)
		if err != nil {
			return nil, err
		}
		ex, ok := examples[example]
		if !ok {
			return nil, fmt.Errorf("unknown example %q", example)
		}
		req.Graph = ex.Graph
		req.Start = ex.Start
		req.Goal = ex.Goal
		req.Weights = ex.Weights
		req.Heuristic = ex.Heuristic

	default:
		return nil, fmt.Errorf("one of --input or --example is required")
	}

	if algorithm != "" {
		req.Algorithm = algorithm
	}
	if start != "" {
		req.Start = start
	}
	if goal != "" {
		req.Goal = goal
	}

	return req, nil
}
