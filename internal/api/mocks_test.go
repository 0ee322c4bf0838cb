package api_test

import (
	"context"

	"github.com/pathtraceio/pathtrace/internal/models"
	"github.com/pathtraceio/pathtrace/internal/service"
)

// mockSearchService implements the handler-facing interfaces with
// function fields.
type mockSearchService struct {
	searchFn  func(ctx context.Context, req models.SearchRequest) (models.SearchResult, error)
	compareFn func(ctx context.Context, req models.SearchRequest) (service.ComparisonReport, error)
	treeFn    func(ctx context.Context, req models.TreeRequest, maxDepth int) models.TreeResult
	namesFn   func() []string
}

func (m *mockSearchService) Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error) {
	return m.searchFn(ctx, req)
}

func (m *mockSearchService) Compare(ctx context.Context, req models.SearchRequest) (service.ComparisonReport, error) {
	return m.compareFn(ctx, req)
}

func (m *mockSearchService) Tree(ctx context.Context, req models.TreeRequest, maxDepth int) models.TreeResult {
	return m.treeFn(ctx, req, maxDepth)
}

func (m *mockSearchService) Algorithms() []string {
	return m.namesFn()
}
