package flowchart

import (
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Edge is a finalized flowchart link between two nodes.
type Edge struct {
	src   mermaid.NodeID
	dst   mermaid.NodeID
	arrow Arrow
	label string
}

// Endpoints returns the edge's source and destination node ids.
func (e Edge) Endpoints() (src, dst mermaid.NodeID) { return e.src, e.dst }

// Arrow returns the edge's arrow kind.
func (e Edge) Arrow() Arrow { return e.arrow }

// Label returns the raw label text, empty when unset.
func (e Edge) Label() string { return e.label }

// EdgeBuilder accumulates the attributes of one flowchart link. Source,
// destination and arrow are required; the label is optional.
type EdgeBuilder struct {
	src      mermaid.NodeID
	hasSrc   bool
	dst      mermaid.NodeID
	hasDst   bool
	arrow    Arrow
	hasArrow bool
	label    string
}

// NewEdge returns an empty EdgeBuilder.
func NewEdge() *EdgeBuilder { return &EdgeBuilder{} }

// Source sets the edge's source node.
func (b *EdgeBuilder) Source(id mermaid.NodeID) *EdgeBuilder {
	b.src = id
	b.hasSrc = true
	return b
}

// Destination sets the edge's destination node.
func (b *EdgeBuilder) Destination(id mermaid.NodeID) *EdgeBuilder {
	b.dst = id
	b.hasDst = true
	return b
}

// Arrow sets the edge's arrow kind. There is no default: every link states
// its semantics explicitly.
func (b *EdgeBuilder) Arrow(a Arrow) *EdgeBuilder {
	b.arrow = a
	b.hasArrow = true
	return b
}

// Label sets an optional label rendered inline on the link.
func (b *EdgeBuilder) Label(label string) *EdgeBuilder {
	b.label = label
	return b
}

// build freezes the builder into an Edge, reporting the first unset
// required field as a MissingFieldError.
func (b *EdgeBuilder) build() (Edge, error) {
	if !b.hasSrc {
		return Edge{}, &mermaid.MissingFieldError{Field: "source"}
	}
	if !b.hasDst {
		return Edge{}, &mermaid.MissingFieldError{Field: "destination"}
	}
	if !b.hasArrow {
		return Edge{}, &mermaid.MissingFieldError{Field: "relationship"}
	}
	return Edge{src: b.src, dst: b.dst, arrow: b.arrow, label: b.label}, nil
}
