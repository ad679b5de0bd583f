package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateNodeID means two inputs produced the same node id, which
	// happens only when taxonomy codes and article ids overlap or an article repeats.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrDanglingEdge means an edge references a node id that is not in the graph.
	ErrDanglingEdge = errors.New("edge references unknown node")
)

// registry indexes nodes by id while a document is being assembled.
type registry struct {
	nodes map[string]Node
}

func newRegistry() *registry {
	return &registry{nodes: make(map[string]Node)}
}

// add registers n, rejecting ids that are already taken.
func (r *registry) add(n Node) error {
	id := n.NodeID()
	if _, ok := r.nodes[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateNodeID, id)
	}
	r.nodes[id] = n
	return nil
}

func (r *registry) has(id string) bool {
	_, ok := r.nodes[id]
	return ok
}

// isCategory reports whether id is a registered taxonomy node.
func (r *registry) isCategory(id string) bool {
	_, ok := r.nodes[id].(CategoryNode)
	return ok
}

// check verifies that both endpoints of e are registered.
func (r *registry) check(e Edge) error {
	src, dst := e.Endpoints()
	for _, id := range []string{src, dst} {
		if !r.has(id) {
			return fmt.Errorf("%w: %s edge %s -> %s: missing %s", ErrDanglingEdge, e.EdgeType(), src, dst, id)
		}
	}
	return nil
}
