package client

import "context"

// SearchService handles instrumented search operations.
type SearchService struct {
	c *Client
}

// Run executes a search and returns the result with its full step trace.
func (s *SearchService) Run(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	var resp SearchResult
	if err := s.c.post(ctx, "/api/v1/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Compare benchmarks the custom implementation against the library-backed
// one on the same graph.
func (s *SearchService) Compare(ctx context.Context, req *SearchRequest) (*ComparisonReport, error) {
	var resp ComparisonReport
	if err := s.c.post(ctx, "/api/v1/search/compare", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
