// Package graph assembles the subject-area and article graph consumed by the
// visualization front end.
package graph

import (
	"fmt"
	"strings"

	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

// NodeType is the "type" field of a node in the output document.
type NodeType string

const (
	NodeTypeDiscipline NodeType = "discipline"
	NodeTypeAdjacent   NodeType = "adjacent_discipline"
	NodeTypeArticle    NodeType = "article"
)

// EdgeType is the "type" field of an edge in the output document.
type EdgeType string

const (
	EdgeContains EdgeType = "CONTAINS"
	EdgeRelated  EdgeType = "RELATED"
	EdgeDepends  EdgeType = "DEPENDS"
)

// Cluster keys shared by several nodes. Disciplines use their own code.
const (
	ClusterAdjacent = "ADJACENT"
	ClusterOther    = "OTHER"
)

// Fallback node identity. The id is reserved: no category or article may use it.
const (
	FallbackID          = "misc.other"
	fallbackLabel       = "Other Disciplines"
	fallbackGroup       = "other"
	fallbackDescription = "Articles from categories not explicitly tracked in the current taxonomy."
)

// Visual weights.
const (
	ValDiscipline     = 25
	ValAdjacent       = 20
	ValArticle        = 5
	ValFallback       = 15
	ValContainsMain   = 2
	ValContainsSecond = 1
	MaxRelatedVal     = 10
)

// Node is one of CategoryNode, ArticleNode or FallbackNode.
type Node interface {
	NodeID() string
	wire() wireNode
}

// Edge is one of ContainsEdge, RelatedEdge or DependsEdge.
type Edge interface {
	Endpoints() (source, target string)
	EdgeType() EdgeType
	Val() float64
	wire() wireEdge
}

// CategoryNode is a taxonomy entry. Entries in the math group are disciplines,
// everything else is an adjacent discipline.
type CategoryNode struct {
	Code        string
	Name        string
	Description string
	Group       string
}

func (n CategoryNode) NodeID() string { return n.Code }

// IsDiscipline reports whether the node belongs to the primary discipline.
func (n CategoryNode) IsDiscipline() bool { return n.Group == taxonomy.GroupMath }

// Type returns discipline or adjacent_discipline.
func (n CategoryNode) Type() NodeType {
	if n.IsDiscipline() {
		return NodeTypeDiscipline
	}
	return NodeTypeAdjacent
}

// Cluster gives every discipline its own color bucket and groups adjacent ones together.
func (n CategoryNode) Cluster() string {
	if n.IsDiscipline() {
		return n.Code
	}
	return ClusterAdjacent
}

func (n CategoryNode) Val() float64 {
	if n.IsDiscipline() {
		return ValDiscipline
	}
	return ValAdjacent
}

func (n CategoryNode) wire() wireNode {
	return wireNode{
		ID:          n.Code,
		Label:       n.Name,
		Type:        n.Type(),
		Group:       n.Group,
		Description: n.Description,
		Cluster:     n.Cluster(),
		Val:         n.Val(),
	}
}

// ArticleNode is a ranked article placed in the graph.
type ArticleNode struct {
	ID              string
	Title           string
	Abstract        string
	Authors         []string
	PrimaryCategory string // As supplied, even when outside the taxonomy
	Cluster         string
	URL             string
}

func (n ArticleNode) NodeID() string { return n.ID }

func (n ArticleNode) wire() wireNode {
	return wireNode{
		ID:              n.ID,
		Label:           n.Title,
		Type:            NodeTypeArticle,
		Description:     n.Abstract,
		Cluster:         n.Cluster,
		Val:             ValArticle,
		Authors:         n.Authors,
		PrimaryCategory: n.PrimaryCategory,
		URL:             n.URL,
	}
}

// FallbackNode absorbs articles whose primary category is outside the taxonomy.
type FallbackNode struct{}

func (FallbackNode) NodeID() string { return FallbackID }

func (FallbackNode) wire() wireNode {
	return wireNode{
		ID:          FallbackID,
		Label:       fallbackLabel,
		Type:        NodeTypeAdjacent,
		Group:       fallbackGroup,
		Description: fallbackDescription,
		Cluster:     ClusterOther,
		Val:         ValFallback,
	}
}

// ContainsEdge links a category (or the fallback node) to an article.
type ContainsEdge struct {
	Category string
	Article  string
	Primary  bool
}

func (e ContainsEdge) Endpoints() (string, string) { return e.Category, e.Article }
func (e ContainsEdge) EdgeType() EdgeType          { return EdgeContains }

func (e ContainsEdge) Val() float64 {
	if e.Primary {
		return ValContainsMain
	}
	return ValContainsSecond
}

func (e ContainsEdge) wire() wireEdge {
	return wireEdge{Source: e.Category, Target: e.Article, Type: EdgeContains, Val: e.Val()}
}

// RelatedEdge links two categories that share articles. Its value is the
// weight scaled so that MaxWeight maps to MaxRelatedVal.
type RelatedEdge struct {
	Source    string
	Target    string
	Weight    int
	MaxWeight int
}

func (e RelatedEdge) Endpoints() (string, string) { return e.Source, e.Target }
func (e RelatedEdge) EdgeType() EdgeType          { return EdgeRelated }

func (e RelatedEdge) Val() float64 {
	maxWeight := e.MaxWeight
	if maxWeight <= 0 {
		maxWeight = 1
	}
	return float64(e.Weight) / float64(maxWeight) * MaxRelatedVal
}

func (e RelatedEdge) Label() string {
	return fmt.Sprintf("%d shared articles", e.Weight)
}

func (e RelatedEdge) wire() wireEdge {
	return wireEdge{Source: e.Source, Target: e.Target, Type: EdgeRelated, Val: e.Val(), Label: e.Label()}
}

// DependsEdge links two articles with at least one author in common.
// SharedAuthors is sorted.
type DependsEdge struct {
	Source        string
	Target        string
	SharedAuthors []string
}

func (e DependsEdge) Endpoints() (string, string) { return e.Source, e.Target }
func (e DependsEdge) EdgeType() EdgeType          { return EdgeDepends }
func (e DependsEdge) Val() float64                { return float64(2 * len(e.SharedAuthors)) }

func (e DependsEdge) Label() string {
	return "Authors: " + strings.Join(e.SharedAuthors, ", ")
}

func (e DependsEdge) wire() wireEdge {
	return wireEdge{Source: e.Source, Target: e.Target, Type: EdgeDepends, Val: e.Val(), Label: e.Label()}
}

// Document is the complete graph. Node ids are unique and every edge endpoint
// is a node id of the document.
type Document struct {
	Nodes []Node
	Links []Edge
}

// ArticleNodes returns the article nodes in document order.
func (d *Document) ArticleNodes() []ArticleNode {
	var out []ArticleNode
	for _, n := range d.Nodes {
		if a, ok := n.(ArticleNode); ok {
			out = append(out, a)
		}
	}
	return out
}

// HasFallback reports whether the fallback node is part of the document.
func (d *Document) HasFallback() bool {
	for _, n := range d.Nodes {
		if _, ok := n.(FallbackNode); ok {
			return true
		}
	}
	return false
}

// Stats counts nodes by output type and edges by type.
type Stats struct {
	Nodes       int              `json:"nodes"`
	Links       int              `json:"links"`
	NodesByType map[NodeType]int `json:"nodes_by_type"`
	LinksByType map[EdgeType]int `json:"links_by_type"`
	Fallback    bool             `json:"fallback"`
}

// Stats summarizes the document.
func (d *Document) Stats() Stats {
	s := Stats{
		Nodes:       len(d.Nodes),
		Links:       len(d.Links),
		NodesByType: make(map[NodeType]int),
		LinksByType: make(map[EdgeType]int),
	}
	for _, n := range d.Nodes {
		s.NodesByType[n.wire().Type]++
		if _, ok := n.(FallbackNode); ok {
			s.Fallback = true
		}
	}
	for _, e := range d.Links {
		s.LinksByType[e.EdgeType()]++
	}
	return s
}

// wireNode is the JSON shape of a node.
type wireNode struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Type            NodeType `json:"type"`
	Group           string   `json:"group,omitempty"`
	Description     string   `json:"description,omitempty"`
	Cluster         string   `json:"cluster"`
	Val             float64  `json:"val"`
	Authors         []string `json:"authors,omitempty"`
	PrimaryCategory string   `json:"primary_category,omitempty"`
	URL             string   `json:"url,omitempty"`
}

// wireEdge is the JSON shape of an edge.
type wireEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
	Val    float64  `json:"val"`
	Label  string   `json:"label,omitempty"`
}

type wireDocument struct {
	Nodes []wireNode `json:"nodes"`
	Links []wireEdge `json:"links"`
}

func (d *Document) toWire() wireDocument {
	w := wireDocument{
		Nodes: make([]wireNode, 0, len(d.Nodes)),
		Links: make([]wireEdge, 0, len(d.Links)),
	}
	for _, n := range d.Nodes {
		w.Nodes = append(w.Nodes, n.wire())
	}
	for _, e := range d.Links {
		w.Links = append(w.Links, e.wire())
	}
	return w
}
