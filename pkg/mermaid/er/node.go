package er

import (
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Node is a finalized entity.
type Node struct {
	id    mermaid.NodeID
	label string
}

// ID returns the entity's identifier within its diagram.
func (n Node) ID() mermaid.NodeID { return n.id }

// Label returns the raw (unescaped) entity name.
func (n Node) Label() string { return n.label }

// NodeBuilder accumulates the attributes of one entity.
type NodeBuilder struct {
	label    string
	hasLabel bool
}

// NewNode returns an empty NodeBuilder.
func NewNode() *NodeBuilder { return &NodeBuilder{} }

// Label sets the entity name. Required; an empty string does not count
// as set.
func (b *NodeBuilder) Label(label string) *NodeBuilder {
	b.label = label
	b.hasLabel = label != ""
	return b
}

func (b *NodeBuilder) build(id mermaid.NodeID) (Node, error) {
	if !b.hasLabel {
		return Node{}, &mermaid.MissingFieldError{Field: "label"}
	}
	return Node{id: id, label: b.label}, nil
}
