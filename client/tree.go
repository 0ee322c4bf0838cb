package client

import "context"

// TreeService handles state-space tree generation.
type TreeService struct {
	c *Client
}

// Generate builds a state-space tree from the given graph and root.
func (s *TreeService) Generate(ctx context.Context, req *TreeRequest) (*TreeResult, error) {
	var resp TreeResult
	if err := s.c.post(ctx, "/api/v1/tree", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
