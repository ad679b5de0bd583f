// Package pipeline runs the graph build and ingest workflows end to end.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
	"github.com/nkrishelie/arxiv-graph-viz/internal/graph"
	"github.com/nkrishelie/arxiv-graph-viz/internal/logger"
	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

// Store answers the analytics queries a build needs.
type Store interface {
	CountSince(since time.Time) (int, error)
	TopArticles(since time.Time, limit int) ([]article.Record, error)
	CoOccurrences(since time.Time, minWeight int) ([]article.CoOccurrence, error)
}

// TaxonomyResolver yields the taxonomy for a run.
type TaxonomyResolver interface {
	Resolve(ctx context.Context) taxonomy.Outcome
}

// BuildOptions controls a graph build.
type BuildOptions struct {
	Now                   time.Time // zero means time.Now()
	AnalysisPeriodDays    int
	TopLimitPerCategory   int
	MinCoOccurrenceWeight int
	Output                string // graph document path; empty skips writing
}

// BuildResult reports what a build produced.
type BuildResult struct {
	RunID          string      `json:"run_id"`
	TaxonomySource string      `json:"taxonomy_source"`
	TaxonomySize   int         `json:"taxonomy_size"`
	CacheRefreshed bool        `json:"cache_refreshed"`
	Since          string      `json:"since"`
	TotalPapers    int         `json:"total_papers"` // every stored article in the window
	Articles       int         `json:"articles"`
	CoOccurrences  int         `json:"co_occurrences"`
	Output         string      `json:"output,omitempty"`
	Stats          graph.Stats `json:"stats"`

	Document *graph.Document `json:"-"`
}

// Build resolves the taxonomy, queries the store and assembles the graph
// document, writing it to opts.Output when set. An empty taxonomy aborts the
// run with taxonomy.ErrEmptyTaxonomy before anything is written.
func Build(ctx context.Context, resolver TaxonomyResolver, store Store, opts BuildOptions, log *logger.Logger) (*BuildResult, error) {
	if log == nil {
		log = logger.Nop()
	}
	runID := uuid.NewString()
	log = log.With("run_id", runID)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	since := now.AddDate(0, 0, -opts.AnalysisPeriodDays)

	outcome := resolver.Resolve(ctx)
	if outcome.Taxonomy.Len() == 0 {
		log.Error("taxonomy is empty, aborting", "source", outcome.Source)
		return nil, taxonomy.ErrEmptyTaxonomy
	}
	log.Info("taxonomy resolved", "source", outcome.Source, "count", outcome.Taxonomy.Len())

	total, err := store.CountSince(since)
	if err != nil {
		return nil, fmt.Errorf("counting articles: %w", err)
	}

	articles, err := store.TopArticles(since, opts.TopLimitPerCategory)
	if err != nil {
		return nil, fmt.Errorf("loading top articles: %w", err)
	}
	coOccurrences, err := store.CoOccurrences(since, opts.MinCoOccurrenceWeight)
	if err != nil {
		return nil, fmt.Errorf("loading co-occurrences: %w", err)
	}
	log.Debug("store queried", "total_papers", total, "articles", len(articles), "co_occurrences", len(coOccurrences))

	doc, err := graph.Build(outcome.Taxonomy, articles, coOccurrences)
	if err != nil {
		return nil, err
	}

	res := &BuildResult{
		RunID:          runID,
		TaxonomySource: outcome.Source,
		TaxonomySize:   outcome.Taxonomy.Len(),
		CacheRefreshed: outcome.CacheRefreshed,
		Since:          since.Format(article.DateLayout),
		TotalPapers:    total,
		Articles:       len(articles),
		CoOccurrences:  len(coOccurrences),
		Stats:          doc.Stats(),
		Document:       doc,
	}

	if opts.Output != "" {
		if err := graph.WriteFile(opts.Output, doc); err != nil {
			return nil, err
		}
		res.Output = opts.Output
		log.Info("graph written", "path", opts.Output, "nodes", res.Stats.Nodes, "links", res.Stats.Links)
	}

	return res, nil
}
