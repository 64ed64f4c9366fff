package er

import (
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Edge is a finalized relationship between two entities, carrying one
// cardinality per side.
type Edge struct {
	src   mermaid.NodeID
	dst   mermaid.NodeID
	left  Cardinality
	right Cardinality
	label string
}

// Endpoints returns the edge's source and destination entity ids.
func (e Edge) Endpoints() (src, dst mermaid.NodeID) { return e.src, e.dst }

// Cardinality returns the source-side and destination-side cardinalities.
func (e Edge) Cardinality() (left, right Cardinality) { return e.left, e.right }

// Label returns the raw label text, empty when unset.
func (e Edge) Label() string { return e.label }

// EdgeBuilder accumulates the attributes of one relationship. Source,
// destination and a cardinality pair are required; the label is optional
// and renders as an empty quoted string when unset.
type EdgeBuilder struct {
	src     mermaid.NodeID
	hasSrc  bool
	dst     mermaid.NodeID
	hasDst  bool
	left    Cardinality
	right   Cardinality
	hasCard bool
	label   string
}

// NewEdge returns an empty EdgeBuilder.
func NewEdge() *EdgeBuilder { return &EdgeBuilder{} }

// Source sets the edge's source entity.
func (b *EdgeBuilder) Source(id mermaid.NodeID) *EdgeBuilder {
	b.src = id
	b.hasSrc = true
	return b
}

// Destination sets the edge's destination entity.
func (b *EdgeBuilder) Destination(id mermaid.NodeID) *EdgeBuilder {
	b.dst = id
	b.hasDst = true
	return b
}

// Cardinality sets an asymmetric cardinality pair.
func (b *EdgeBuilder) Cardinality(left, right Cardinality) *EdgeBuilder {
	b.left = left
	b.right = right
	b.hasCard = true
	return b
}

// ExactlyOne sets a one-to-one relationship on both sides.
func (b *EdgeBuilder) ExactlyOne() *EdgeBuilder { return b.Cardinality(ExactlyOne, ExactlyOne) }

// ZeroOrOne sets an optional-one relationship on both sides.
func (b *EdgeBuilder) ZeroOrOne() *EdgeBuilder { return b.Cardinality(ZeroOrOne, ZeroOrOne) }

// ZeroOrMore sets an optional-many relationship on both sides.
func (b *EdgeBuilder) ZeroOrMore() *EdgeBuilder { return b.Cardinality(ZeroOrMore, ZeroOrMore) }

// OneOrMore sets a mandatory-many relationship on both sides.
func (b *EdgeBuilder) OneOrMore() *EdgeBuilder { return b.Cardinality(OneOrMore, OneOrMore) }

// Label sets an optional relationship label.
func (b *EdgeBuilder) Label(label string) *EdgeBuilder {
	b.label = label
	return b
}

func (b *EdgeBuilder) build() (Edge, error) {
	if !b.hasSrc {
		return Edge{}, &mermaid.MissingFieldError{Field: "source"}
	}
	if !b.hasDst {
		return Edge{}, &mermaid.MissingFieldError{Field: "destination"}
	}
	if !b.hasCard {
		return Edge{}, &mermaid.MissingFieldError{Field: "relationship"}
	}
	return Edge{src: b.src, dst: b.dst, left: b.left, right: b.right, label: b.label}, nil
}
