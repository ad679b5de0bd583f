package graph

import "sort"

// Link returns a DEPENDS edge for every pair of articles that share at least
// one author. Pairs are visited in node order (i < j), so the source of each
// edge is the article that comes first. Shared names are sorted.
func Link(articles []ArticleNode) []Edge {
	sets := make([]map[string]bool, len(articles))
	for i, a := range articles {
		sets[i] = authorSet(a.Authors)
	}

	var edges []Edge
	for i := 0; i < len(articles); i++ {
		for j := i + 1; j < len(articles); j++ {
			shared := intersect(sets[i], sets[j])
			if len(shared) == 0 {
				continue
			}
			edges = append(edges, DependsEdge{
				Source:        articles[i].ID,
				Target:        articles[j].ID,
				SharedAuthors: shared,
			})
		}
	}
	return edges
}

func authorSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// intersect returns the sorted names present in both sets.
func intersect(a, b map[string]bool) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	var out []string
	for n := range a {
		if b[n] {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
