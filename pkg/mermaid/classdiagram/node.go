package classdiagram

import (
	"slices"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Node is a finalized class node: a label plus an ordered list of member
// lines (attributes and methods, rendered verbatim inside the body braces).
type Node struct {
	id      mermaid.NodeID
	label   string
	members []string
}

// ID returns the node's identifier within its diagram.
func (n Node) ID() mermaid.NodeID { return n.id }

// Label returns the raw (unescaped) class name.
func (n Node) Label() string { return n.label }

// Members returns the member lines in insertion order.
func (n Node) Members() []string { return slices.Clone(n.members) }

// NodeBuilder accumulates the attributes of one class node.
type NodeBuilder struct {
	label    string
	hasLabel bool
	members  []string
}

// NewNode returns an empty NodeBuilder.
func NewNode() *NodeBuilder { return &NodeBuilder{} }

// Label sets the class name. Required; an empty string does not count
// as set.
func (b *NodeBuilder) Label(label string) *NodeBuilder {
	b.label = label
	b.hasLabel = label != ""
	return b
}

// Member appends one member line, rendered inside the class body in call
// order. Use whatever notation the diagram needs, e.g. "+name string" or
// "bark()".
func (b *NodeBuilder) Member(member string) *NodeBuilder {
	b.members = append(b.members, member)
	return b
}

func (b *NodeBuilder) build(id mermaid.NodeID) (Node, error) {
	if !b.hasLabel {
		return Node{}, &mermaid.MissingFieldError{Field: "label"}
	}
	return Node{id: id, label: b.label, members: slices.Clone(b.members)}, nil
}
