package api

import (
	"context"

	"github.com/pathtraceio/pathtrace/internal/models"
	"github.com/pathtraceio/pathtrace/internal/service"
)

// SearchRunner defines the search operations used by SearchHandler.
type SearchRunner interface {
	Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error)
	Compare(ctx context.Context, req models.SearchRequest) (service.ComparisonReport, error)
}

// TreeBuilder defines the tree-generation operation used by TreeHandler.
type TreeBuilder interface {
	Tree(ctx context.Context, req models.TreeRequest, maxDepth int) models.TreeResult
}

// AlgorithmLister exposes the registry's valid names for discovery.
type AlgorithmLister interface {
	Algorithms() []string
}
