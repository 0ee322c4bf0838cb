// Package service provides business logic between API handlers and the
// search engine: algorithm resolution, instrumentation, metrics and event
// publishing.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pathtraceio/pathtrace/internal/bench"
	"github.com/pathtraceio/pathtrace/internal/libgraph"
	"github.com/pathtraceio/pathtrace/internal/metrics"
	"github.com/pathtraceio/pathtrace/internal/models"
	"github.com/pathtraceio/pathtrace/internal/search"
	"github.com/pathtraceio/pathtrace/internal/ws"
)

// Publisher is the minimal event-broadcast interface the service needs.
// *ws.Hub satisfies it; tests use a function-field mock.
type Publisher interface {
	Publish(eventType string, data any)
}

// SearchService runs searches and tree generations on behalf of the API
// layer. Each call is synchronous and owns all its state, so a single
// instance serves concurrent requests without locking.
type SearchService struct {
	log    *logrus.Logger
	events Publisher
}

// NewSearchService creates a SearchService. events may be nil when no hub
// is attached (CLI-less test setups).
func NewSearchService(log *logrus.Logger, events Publisher) *SearchService {
	return &SearchService{log: log, events: events}
}

// Search resolves the requested algorithm and runs it to completion with
// the full step trace. Unknown algorithm names fail before any traversal
// work happens.
func (s *SearchService) Search(_ context.Context, req models.SearchRequest) (models.SearchResult, error) {
	algo, err := search.New(req.Algorithm, req.Graph)
	if err != nil {
		return models.SearchResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"algorithm":  algo.Name(),
		"start":      req.Start,
		"goal":       req.Goal,
		"graph_size": len(req.Graph),
	}).Debug("search.run")

	s.publish(ws.EventSearchStarted, ws.SearchStartedData{
		Algorithm: algo.Name(),
		Start:     req.Start,
		Goal:      req.Goal,
		GraphSize: len(req.Graph),
	})

	began := time.Now()
	result := algo.Search(req.Start, req.Goal, req.Options(true))
	elapsed := time.Since(began)

	outcome := "failure"
	if result.Success {
		outcome = "success"
	}

	metrics.SearchesTotal.WithLabelValues(algo.Name(), outcome).Inc()
	metrics.SearchDuration.WithLabelValues(algo.Name()).Observe(elapsed.Seconds())
	metrics.SearchSteps.Observe(float64(len(result.Steps)))

	s.publish(ws.EventSearchCompleted, ws.SearchCompletedData{
		Algorithm:     algo.Name(),
		Success:       result.Success,
		PathLength:    len(result.Path),
		NodesExplored: len(result.Visited),
		Steps:         len(result.Steps),
		DurationMS:    float64(elapsed.Nanoseconds()) / 1e6,
	})

	return result, nil
}

// Tree generates the bounded-depth state-space tree. maxDepth has already
// been defaulted and capped by the handler.
func (s *SearchService) Tree(_ context.Context, req models.TreeRequest, maxDepth int) models.TreeResult {
	s.log.WithFields(logrus.Fields{
		"start":     req.Start,
		"max_depth": maxDepth,
	}).Debug("search.tree")

	result := search.GenerateTree(req.Graph, req.Start, maxDepth)

	metrics.TreesTotal.Inc()
	s.publish(ws.EventTreeGenerated, ws.TreeGeneratedData{
		Start:    req.Start,
		MaxDepth: maxDepth,
		Edges:    len(result.TreeEdges),
		Nodes:    len(result.Nodes),
	})

	return result
}

// Compare benchmarks the instrumented implementation against the
// library-backed one on identical input and attaches the selector's
// recommendation for this graph size.
func (s *SearchService) Compare(_ context.Context, req models.SearchRequest) (ComparisonReport, error) {
	algo, err := search.New(req.Algorithm, req.Graph)
	if err != nil {
		return ComparisonReport{}, err
	}

	adapter := libgraph.New(req.Graph)

	library := func(start, goal string, opts models.Options) models.SearchResult {
		// Name resolution already succeeded above, so the adapter cannot
		// see an unknown algorithm here.
		result, _ := adapter.Search(algo.Name(), start, goal, opts)

		return result
	}

	s.log.WithFields(logrus.Fields{
		"algorithm":  algo.Name(),
		"graph_size": len(req.Graph),
	}).Debug("search.compare")

	comparison := bench.Compare(algo.Search, library, req.Start, req.Goal, req.Options(false))

	return ComparisonReport{
		Comparison:  comparison,
		Recommended: bench.Recommend(algo.Name(), len(req.Graph), false),
	}, nil
}

// Algorithms returns the registry's valid algorithm names.
func (s *SearchService) Algorithms() []string {
	return search.Names()
}

func (s *SearchService) publish(eventType string, data any) {
	if s.events == nil {
		return
	}

	s.events.Publish(eventType, data)
}

// ComparisonReport is a benchmark comparison plus the selector's advisory
// recommendation.
type ComparisonReport struct {
	bench.Comparison

	Recommended string `json:"recommended_implementation"`
}
