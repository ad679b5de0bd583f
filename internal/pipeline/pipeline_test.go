package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
	"github.com/nkrishelie/arxiv-graph-viz/internal/graph"
	"github.com/nkrishelie/arxiv-graph-viz/internal/storage"
	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

type staticResolver struct {
	outcome taxonomy.Outcome
	calls   int
}

func (r *staticResolver) Resolve(context.Context) taxonomy.Outcome {
	r.calls++
	return r.outcome
}

type fakeStore struct {
	total         int
	articles      []article.Record
	coOccurrences []article.CoOccurrence
	err           error

	gotSince time.Time
	gotLimit int
	gotMin   int
}

func (s *fakeStore) CountSince(since time.Time) (int, error) {
	return s.total, s.err
}

func (s *fakeStore) TopArticles(since time.Time, limit int) ([]article.Record, error) {
	s.gotSince, s.gotLimit = since, limit
	return s.articles, s.err
}

func (s *fakeStore) CoOccurrences(since time.Time, minWeight int) ([]article.CoOccurrence, error) {
	s.gotMin = minWeight
	return s.coOccurrences, s.err
}

func testTaxonomy() *taxonomy.Taxonomy {
	return taxonomy.New(
		taxonomy.Entry{Code: "math.AG", Name: "Algebraic Geometry", Group: taxonomy.GroupMath},
		taxonomy.Entry{Code: "math.NT", Name: "Number Theory", Group: taxonomy.GroupMath},
		taxonomy.Entry{Code: "cs.AI", Name: "Artificial Intelligence", Group: "cs"},
	)
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuild_WritesDocument(t *testing.T) {
	resolver := &staticResolver{outcome: taxonomy.Outcome{Taxonomy: testTaxonomy(), Source: taxonomy.SourceCache}}
	store := &fakeStore{
		total: 42,
		articles: []article.Record{
			{ID: "a1", Title: "One", Authors: []string{"X", "Y"}, Categories: []string{"math.AG", "cs.AI"}, PrimaryCategory: "math.AG"},
			{ID: "a2", Title: "Two", Authors: []string{"Y"}, Categories: []string{"math.NT"}, PrimaryCategory: "hep-th"},
		},
		coOccurrences: []article.CoOccurrence{{Source: "math.AG", Target: "math.NT", Weight: 4}},
	}
	out := filepath.Join(t.TempDir(), "graph_data.json")

	res, err := Build(context.Background(), resolver, store, BuildOptions{
		Now:                   now,
		AnalysisPeriodDays:    30,
		TopLimitPerCategory:   15,
		MinCoOccurrenceWeight: 2,
		Output:                out,
	}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if res.RunID == "" {
		t.Error("RunID is empty")
	}
	if res.TaxonomySource != taxonomy.SourceCache || res.TaxonomySize != 3 {
		t.Errorf("taxonomy = %s/%d", res.TaxonomySource, res.TaxonomySize)
	}
	if res.Since != "2024-05-02" || !store.gotSince.Equal(now.AddDate(0, 0, -30)) {
		t.Errorf("Since = %s, store got %v", res.Since, store.gotSince)
	}
	if res.TotalPapers != 42 {
		t.Errorf("TotalPapers = %d, want 42", res.TotalPapers)
	}
	if store.gotLimit != 15 || store.gotMin != 2 {
		t.Errorf("store got limit %d, min weight %d", store.gotLimit, store.gotMin)
	}

	// 3 categories + fallback + 2 articles.
	if res.Stats.Nodes != 6 || !res.Stats.Fallback {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Stats.LinksByType[graph.EdgeDepends] != 1 || res.Stats.LinksByType[graph.EdgeRelated] != 1 {
		t.Errorf("LinksByType = %v", res.Stats.LinksByType)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var parsed struct {
		Nodes []json.RawMessage `json:"nodes"`
		Links []json.RawMessage `json:"links"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(parsed.Nodes) != res.Stats.Nodes || len(parsed.Links) != res.Stats.Links {
		t.Errorf("file has %d nodes / %d links, stats say %d / %d",
			len(parsed.Nodes), len(parsed.Links), res.Stats.Nodes, res.Stats.Links)
	}
}

func TestBuild_EmptyTaxonomyIsFatal(t *testing.T) {
	resolver := &staticResolver{outcome: taxonomy.Outcome{Taxonomy: taxonomy.New(), Source: taxonomy.SourceNone}}
	store := &fakeStore{}
	out := filepath.Join(t.TempDir(), "graph_data.json")

	_, err := Build(context.Background(), resolver, store, BuildOptions{Now: now, AnalysisPeriodDays: 1, TopLimitPerCategory: 1, MinCoOccurrenceWeight: 1, Output: out}, nil)
	if !errors.Is(err, taxonomy.ErrEmptyTaxonomy) {
		t.Fatalf("Build() error = %v, want ErrEmptyTaxonomy", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written despite empty taxonomy")
	}
}

func TestBuild_StoreError(t *testing.T) {
	resolver := &staticResolver{outcome: taxonomy.Outcome{Taxonomy: testTaxonomy(), Source: taxonomy.SourceLive}}
	storeErr := errors.New("disk on fire")

	_, err := Build(context.Background(), resolver, &fakeStore{err: storeErr}, BuildOptions{Now: now}, nil)
	if !errors.Is(err, storeErr) {
		t.Errorf("Build() error = %v, want wrapped store error", err)
	}
}

func TestBuild_DuplicateIDIsFatal(t *testing.T) {
	resolver := &staticResolver{outcome: taxonomy.Outcome{Taxonomy: testTaxonomy(), Source: taxonomy.SourceLive}}
	store := &fakeStore{articles: []article.Record{{ID: "math.AG", Categories: []string{"math.AG"}, PrimaryCategory: "math.AG"}}}
	out := filepath.Join(t.TempDir(), "graph_data.json")

	_, err := Build(context.Background(), resolver, store, BuildOptions{Now: now, Output: out}, nil)
	if !errors.Is(err, graph.ErrDuplicateNodeID) {
		t.Fatalf("Build() error = %v, want ErrDuplicateNodeID", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written despite invalid graph")
	}
}

func TestBuild_NoOutputSkipsWrite(t *testing.T) {
	resolver := &staticResolver{outcome: taxonomy.Outcome{Taxonomy: testTaxonomy(), Source: taxonomy.SourceDefault}}

	res, err := Build(context.Background(), resolver, &fakeStore{}, BuildOptions{Now: now}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if res.Output != "" || res.Document == nil {
		t.Errorf("Output = %q, Document = %v", res.Output, res.Document)
	}
}

// TestBuild_WithRealStore runs the build against SQLite and the file-backed
// taxonomy resolver, with no live source reachable.
func TestBuild_WithRealStore(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.OpenDB(filepath.Join(dir, "articles.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	recs := []article.Record{
		{ID: "p1", Title: "P1", Authors: []string{"Noether"}, Categories: []string{"math.AG", "math.NT"}, PrimaryCategory: "math.AG", PublishedDate: "2024-05-20"},
		{ID: "p2", Title: "P2", Authors: []string{"Noether"}, Categories: []string{"math.AG", "math.NT"}, PrimaryCategory: "math.NT", PublishedDate: "2024-05-21"},
		{ID: "p3", Title: "Old", Categories: []string{"math.AG"}, PrimaryCategory: "math.AG", PublishedDate: "2020-01-01"},
	}
	if _, err := db.Rebuild(recs); err != nil {
		t.Fatal(err)
	}

	resolver := &taxonomy.Resolver{
		Cache:   taxonomy.NewFileCache(filepath.Join(dir, "taxonomy_cache.json")),
		Default: taxonomy.Default(),
	}

	res, err := Build(context.Background(), resolver, db, BuildOptions{
		Now:                   now,
		AnalysisPeriodDays:    365,
		TopLimitPerCategory:   15,
		MinCoOccurrenceWeight: 2,
	}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if res.TaxonomySource != taxonomy.SourceDefault {
		t.Errorf("TaxonomySource = %s, want default", res.TaxonomySource)
	}
	if res.Articles != 2 || res.CoOccurrences != 1 {
		t.Errorf("Articles = %d, CoOccurrences = %d; want 2, 1", res.Articles, res.CoOccurrences)
	}
	// p3 falls outside the window.
	if res.TotalPapers != 2 {
		t.Errorf("TotalPapers = %d, want 2", res.TotalPapers)
	}
	if res.Stats.LinksByType[graph.EdgeDepends] != 1 {
		t.Errorf("LinksByType = %v, want one DEPENDS edge", res.Stats.LinksByType)
	}
	if res.Stats.Fallback {
		t.Error("fallback node emitted although every primary category is known")
	}
}
