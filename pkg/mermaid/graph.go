package mermaid

import "slices"

// Node is the constraint satisfied by finalized dialect node descriptors.
type Node interface {
	ID() NodeID
}

// Edge is the constraint satisfied by finalized dialect edge descriptors.
type Edge interface {
	// Endpoints returns the source and destination node ids of the edge.
	Endpoints() (src, dst NodeID)
}

// Graph accumulates validated node and edge descriptors for one diagram.
// It is append-only: entries are never removed or reordered, so insertion
// order doubles as identifier order and render order. Graph enforces the
// referential-integrity invariant that every edge endpoint refers to a
// previously appended node.
//
// The zero value is ready to use. Graph is not safe for concurrent use.
type Graph[N Node, E Edge] struct {
	nodes []N
	edges []E
}

// AppendNode allocates the next NodeID and invokes finalize to build the
// dialect descriptor for it. If finalize returns an error the id is not
// consumed and the graph is left unchanged. On success the descriptor is
// appended and its id returned for use as an edge endpoint.
func (g *Graph[N, E]) AppendNode(finalize func(NodeID) (N, error)) (NodeID, error) {
	id := NodeID(len(g.nodes))
	n, err := finalize(id)
	if err != nil {
		return 0, err
	}
	g.nodes = append(g.nodes, n)
	return id, nil
}

// AppendEdge validates the edge's endpoints against the set of previously
// appended nodes and appends it. Returns UnknownNodeError if either endpoint
// lies outside the allocated id range; the graph is unchanged on failure.
func (g *Graph[N, E]) AppendEdge(e E) error {
	src, dst := e.Endpoints()
	if src < 0 || int(src) >= len(g.nodes) {
		return &UnknownNodeError{ID: src}
	}
	if dst < 0 || int(dst) >= len(g.nodes) {
		return &UnknownNodeError{ID: dst}
	}
	g.edges = append(g.edges, e)
	return nil
}

// NodeCount returns the number of appended nodes.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of appended edges.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// Finalize snapshots the graph into an immutable Diagram. It cannot fail:
// every invariant was enforced incrementally at append time. The snapshot
// copies both sequences, so later appends to the graph do not affect it.
func (g *Graph[N, E]) Finalize() Diagram[N, E] {
	return Diagram[N, E]{
		nodes: slices.Clone(g.nodes),
		edges: slices.Clone(g.edges),
	}
}

// Diagram is an immutable snapshot of a Graph. Node ids form the contiguous
// range 0..N-1 in insertion order and every edge endpoint lies within that
// range. Diagram values are safe for concurrent reads.
type Diagram[N Node, E Edge] struct {
	nodes []N
	edges []E
}

// Nodes returns the node descriptors in insertion (= identifier) order.
// The returned slice is a copy.
func (d Diagram[N, E]) Nodes() []N { return slices.Clone(d.nodes) }

// Edges returns the edge descriptors in insertion order.
// The returned slice is a copy.
func (d Diagram[N, E]) Edges() []E { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes in the snapshot.
func (d Diagram[N, E]) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the snapshot.
func (d Diagram[N, E]) EdgeCount() int { return len(d.edges) }
