package graph

import (
	"fmt"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

// Build assembles the graph, appends collaboration edges between its articles
// and validates the result.
func Build(tax *taxonomy.Taxonomy, articles []article.Record, coOccurrences []article.CoOccurrence) (*Document, error) {
	doc, err := Assemble(tax, articles, coOccurrences)
	if err != nil {
		return nil, fmt.Errorf("assembling graph: %w", err)
	}

	doc.Links = append(doc.Links, Link(doc.ArticleNodes())...)

	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("validating graph: %w", err)
	}
	return doc, nil
}

// Validate checks that node ids are unique and that every edge endpoint is a node of doc.
func Validate(doc *Document) error {
	reg := newRegistry()
	for _, n := range doc.Nodes {
		if err := reg.add(n); err != nil {
			return err
		}
	}
	for _, e := range doc.Links {
		if err := reg.check(e); err != nil {
			return err
		}
	}
	return nil
}
