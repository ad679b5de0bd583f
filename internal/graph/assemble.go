package graph

import (
	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

// Assemble converts a taxonomy, ranked articles and co-occurrence weights into
// a graph document. It performs no I/O and its output depends only on its inputs:
//
//   - nodes are the taxonomy entries in taxonomy order, then the articles in
//     input order, then the fallback node if any article needed it;
//   - edges are the CONTAINS edges of each article in input order, then the
//     RELATED edges in co-occurrence order.
//
// An article whose primary category is outside the taxonomy is attached to the
// fallback node. Unknown secondary categories are dropped. Co-occurrences with
// an endpoint outside the taxonomy are dropped.
func Assemble(tax *taxonomy.Taxonomy, articles []article.Record, coOccurrences []article.CoOccurrence) (*Document, error) {
	doc := &Document{
		Nodes: make([]Node, 0, tax.Len()+len(articles)+1),
		Links: []Edge{},
	}
	reg := newRegistry()

	// The fallback id is reserved up front so CONTAINS edges can target it
	// before the node itself is appended at the end.
	if err := reg.add(FallbackNode{}); err != nil {
		return nil, err
	}

	for _, e := range tax.Entries() {
		n := CategoryNode{Code: e.Code, Name: e.Name, Description: e.Description, Group: e.Group}
		if err := reg.add(n); err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	fallbackNeeded := false
	for _, a := range articles {
		cluster, known := clusterFor(tax, a.PrimaryCategory)
		if !known {
			fallbackNeeded = true
		}

		n := ArticleNode{
			ID:              a.ID,
			Title:           a.Title,
			Abstract:        a.Abstract,
			Authors:         a.Authors,
			PrimaryCategory: a.PrimaryCategory,
			Cluster:         cluster,
			URL:             a.URL,
		}
		if err := reg.add(n); err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, n)

		source := a.PrimaryCategory
		if !reg.isCategory(source) {
			source = FallbackID
			fallbackNeeded = true
		}
		if err := doc.connect(reg, ContainsEdge{Category: source, Article: a.ID, Primary: true}); err != nil {
			return nil, err
		}

		for _, c := range a.SecondaryCategories() {
			if !reg.isCategory(c) {
				continue
			}
			if err := doc.connect(reg, ContainsEdge{Category: c, Article: a.ID}); err != nil {
				return nil, err
			}
		}
	}

	if fallbackNeeded {
		doc.Nodes = append(doc.Nodes, FallbackNode{})
	}

	maxWeight := maxCoOccurrenceWeight(coOccurrences)
	for _, co := range coOccurrences {
		if !tax.Has(co.Source) || !tax.Has(co.Target) {
			continue
		}
		e := RelatedEdge{Source: co.Source, Target: co.Target, Weight: co.Weight, MaxWeight: maxWeight}
		if err := doc.connect(reg, e); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// connect appends e after checking its endpoints against the registry.
func (d *Document) connect(reg *registry, e Edge) error {
	if err := reg.check(e); err != nil {
		return err
	}
	d.Links = append(d.Links, e)
	return nil
}

// clusterFor returns the color bucket for an article filed under code, and
// whether code is part of the taxonomy.
func clusterFor(tax *taxonomy.Taxonomy, code string) (string, bool) {
	e, ok := tax.Get(code)
	if !ok {
		return ClusterOther, false
	}
	if e.IsMath() {
		return code, true
	}
	return ClusterAdjacent, true
}

// maxCoOccurrenceWeight is the largest weight over all records, or 1 when
// there are none (or none is positive).
func maxCoOccurrenceWeight(records []article.CoOccurrence) int {
	maxWeight := 0
	for _, r := range records {
		if r.Weight > maxWeight {
			maxWeight = r.Weight
		}
	}
	if maxWeight <= 0 {
		return 1
	}
	return maxWeight
}
