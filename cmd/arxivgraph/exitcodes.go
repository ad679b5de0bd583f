package main

import (
	"errors"

	"github.com/nkrishelie/arxiv-graph-viz/internal/arxiv"
	"github.com/nkrishelie/arxiv-graph-viz/internal/config"
	"github.com/nkrishelie/arxiv-graph-viz/internal/graph"
	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (no workspace, invalid config.yml)
	ExitDataError   = 3 // Data error (empty taxonomy, invalid graph, malformed JSONL)
	ExitAPIError    = 4 // arXiv API error (rate limit, network, bad feed)
)

// exitCodeFor maps a pipeline error to the exit code it should produce.
func exitCodeFor(err error) int {
	var apiErr *arxiv.APIError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrNotWorkspace):
		return ExitConfigError
	case errors.Is(err, taxonomy.ErrEmptyTaxonomy),
		errors.Is(err, graph.ErrDuplicateNodeID),
		errors.Is(err, graph.ErrDanglingEdge):
		return ExitDataError
	case arxiv.IsRateLimited(err),
		errors.Is(err, arxiv.ErrNetworkError),
		errors.Is(err, arxiv.ErrInvalidResponse),
		errors.As(err, &apiErr):
		return ExitAPIError
	default:
		return ExitError
	}
}
