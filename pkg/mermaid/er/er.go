// Package er builds Mermaid entity-relationship diagrams.
//
// A Builder collects entities and crow's-foot relationships, validating as
// it goes, and produces an immutable Diagram whose Render method emits the
// Mermaid source text.
package er

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Config holds diagram-level options. The zero value renders with the
// default layout, theme and look.
type Config struct {
	// Title is emitted in the frontmatter when non-empty.
	Title string
	// Direction of layout, default LR.
	Direction mermaid.Direction
	// Layout, Theme and Look are pinned in the frontmatter so the output
	// is self-contained.
	Layout mermaid.Layout
	Theme  mermaid.Theme
	Look   mermaid.Look
}

func (c Config) direction() mermaid.Direction { return cmp.Or(c.Direction, mermaid.DirectionLR) }

func (c Config) generic() mermaid.Config {
	return mermaid.Config{
		Layout: cmp.Or(c.Layout, mermaid.LayoutDagre),
		Theme:  cmp.Or(c.Theme, mermaid.ThemeDefault),
		Look:   cmp.Or(c.Look, mermaid.LookClassic),
	}
}

// Builder accumulates an entity-relationship diagram under construction.
type Builder struct {
	config Config
	graph  mermaid.Graph[Node, Edge]
}

// NewBuilder returns a Builder with the given options.
func NewBuilder(config Config) *Builder {
	return &Builder{config: config}
}

// AddNode validates and appends an entity, returning its allocated id.
func (b *Builder) AddNode(nb *NodeBuilder) (mermaid.NodeID, error) {
	return b.graph.AppendNode(nb.build)
}

// AddEdge validates and appends a relationship.
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

// Diagram is a finalized entity-relationship diagram. Safe for concurrent
// reads.
type Diagram struct {
	config Config
	graph  mermaid.Diagram[Node, Edge]
}

// Nodes returns the diagram's entities in identifier order.
func (d *Diagram) Nodes() []Node { return d.graph.Nodes() }

// Edges returns the diagram's relationships in insertion order.
func (d *Diagram) Edges() []Edge { return d.graph.Edges() }

// Render emits the diagram as Mermaid source text.
func (d *Diagram) Render() string {
	var buf bytes.Buffer

	g := d.config.generic()
	buf.WriteString("---\n")
	buf.WriteString("config:\n")
	fmt.Fprintf(&buf, "  layout: %s\n", g.Layout)
	fmt.Fprintf(&buf, "  theme: %s\n", g.Theme)
	fmt.Fprintf(&buf, "  look: %s\n", g.Look)
	if d.config.Title != "" {
		fmt.Fprintf(&buf, "title: %s\n", d.config.Title)
	}
	buf.WriteString("---\n")

	buf.WriteString("erDiagram\n")
	fmt.Fprintf(&buf, "  direction %s\n", d.config.direction())

	for _, n := range d.graph.Nodes() {
		fmt.Fprintf(&buf, "%s[\"%s\"]\n", n.ID(), mermaid.EscapeLabel(n.Label()))
	}
	for _, e := range d.graph.Edges() {
		src, dst := e.Endpoints()
		left, right := e.Cardinality()
		fmt.Fprintf(&buf, "%s %s--%s %s : \"%s\"\n",
			src, left.Left(), right.Right(), dst, mermaid.EscapeLabel(e.Label()))
	}

	return buf.String()
}
