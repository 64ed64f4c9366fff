package flowchart

import (
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Node is a finalized flowchart node. Nodes are created through a
// NodeBuilder and frozen when appended to a Builder.
type Node struct {
	id    mermaid.NodeID
	label string
	shape Shape
}

// ID returns the node's identifier within its diagram.
func (n Node) ID() mermaid.NodeID { return n.id }

// Label returns the raw (unescaped) label text.
func (n Node) Label() string { return n.label }

// Shape returns the node's shape.
func (n Node) Shape() Shape { return n.shape }

// NodeBuilder accumulates the attributes of one flowchart node.
// The zero value has no label and the default rectangle shape.
type NodeBuilder struct {
	label    string
	hasLabel bool
	shape    Shape
}

// NewNode returns an empty NodeBuilder.
func NewNode() *NodeBuilder { return &NodeBuilder{} }

// Label sets the node's display text. Required; an empty string does not
// count as set.
func (b *NodeBuilder) Label(label string) *NodeBuilder {
	b.label = label
	b.hasLabel = label != ""
	return b
}

// Shape overrides the default rectangle shape.
func (b *NodeBuilder) Shape(shape Shape) *NodeBuilder {
	b.shape = shape
	return b
}

// build freezes the builder into a Node with the given id. Fails with
// MissingFieldError if no label was set.
func (b *NodeBuilder) build(id mermaid.NodeID) (Node, error) {
	if !b.hasLabel {
		return Node{}, &mermaid.MissingFieldError{Field: "label"}
	}
	shape := b.shape
	if shape == "" {
		shape = ShapeRectangle
	}
	return Node{id: id, label: b.label, shape: shape}, nil
}
