// Package classdiagram builds Mermaid class diagrams.
//
// A Builder collects class nodes (each with an ordered member list) and
// relationship edges, validating as it goes, and produces an immutable
// Diagram whose Render method emits the Mermaid source text.
package classdiagram

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Config holds diagram-level options. The zero value renders a
// left-to-right diagram showing empty member boxes.
type Config struct {
	// Title is emitted in the frontmatter when non-empty.
	Title string
	// Direction of layout, default LR.
	Direction mermaid.Direction
	// HideEmptyMembersBox suppresses the body box of classes without
	// members when the diagram is drawn.
	HideEmptyMembersBox bool
}

func (c Config) direction() mermaid.Direction { return cmp.Or(c.Direction, mermaid.DirectionLR) }

// Builder accumulates a class diagram under construction.
type Builder struct {
	config Config
	graph  mermaid.Graph[Node, Edge]
}

// NewBuilder returns a Builder with the given options.
func NewBuilder(config Config) *Builder {
	return &Builder{config: config}
}

// AddNode validates and appends a class node, returning its allocated id.
func (b *Builder) AddNode(nb *NodeBuilder) (mermaid.NodeID, error) {
	return b.graph.AppendNode(nb.build)
}

// AddEdge validates and appends a relationship edge.
func (b *Builder) AddEdge(eb *EdgeBuilder) error {
	e, err := eb.build()
	if err != nil {
		return err
	}
	return b.graph.AppendEdge(e)
}

// Build snapshots the builder into an immutable Diagram.
func (b *Builder) Build() *Diagram {
	return &Diagram{config: b.config, graph: b.graph.Finalize()}
}

// Diagram is a finalized class diagram. Safe for concurrent reads.
type Diagram struct {
	config Config
	graph  mermaid.Diagram[Node, Edge]
}

// Nodes returns the diagram's classes in identifier order.
func (d *Diagram) Nodes() []Node { return d.graph.Nodes() }

// Edges returns the diagram's relationships in insertion order.
func (d *Diagram) Edges() []Edge { return d.graph.Edges() }

// Render emits the diagram as Mermaid source text.
func (d *Diagram) Render() string {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	buf.WriteString("config:\n")
	buf.WriteString("  class:\n")
	fmt.Fprintf(&buf, "    hideEmptyMembersBox: %t\n", d.config.HideEmptyMembersBox)
	if d.config.Title != "" {
		fmt.Fprintf(&buf, "title: %s\n", d.config.Title)
	}
	buf.WriteString("---\n")

	buf.WriteString("classDiagram\n")
	fmt.Fprintf(&buf, "  direction %s\n", d.config.direction())

	for _, n := range d.graph.Nodes() {
		members := n.Members()
		if len(members) == 0 {
			fmt.Fprintf(&buf, "class %s[\"%s\"] { }\n", n.ID(), mermaid.EscapeLabel(n.Label()))
			continue
		}
		fmt.Fprintf(&buf, "class %s[\"%s\"] {\n", n.ID(), mermaid.EscapeLabel(n.Label()))
		for _, m := range members {
			fmt.Fprintf(&buf, "  %s\n", m)
		}
		buf.WriteString("}\n")
	}
	for _, e := range d.graph.Edges() {
		src, dst := e.Endpoints()
		label := ""
		if e.Label() != "" {
			label = fmt.Sprintf(" : \"%s\"", mermaid.EscapeLabel(e.Label()))
		}
		fmt.Fprintf(&buf, "%s %s %s%s\n", src, e.Arrow().Token(), dst, label)
	}

	return buf.String()
}
