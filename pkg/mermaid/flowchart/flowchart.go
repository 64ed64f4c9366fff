// Package flowchart builds Mermaid flowchart diagrams.
//
// A Builder collects nodes and edges, validating each as it is appended,
// and produces an immutable Diagram whose Render method emits the Mermaid
// source text:
//
//	b := flowchart.NewBuilder(flowchart.Config{})
//	start, _ := b.AddNode(flowchart.NewNode().Label("Start"))
//	end, _ := b.AddNode(flowchart.NewNode().Label("End"))
//	_ = b.AddEdge(flowchart.NewEdge().Source(start).Destination(end).Arrow(flowchart.ArrowNormal))
//	text := b.Build().Render()
package flowchart

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Config holds diagram-level options. The zero value renders a plain
// left-to-right flowchart with no frontmatter.
type Config struct {
	// Title is emitted in the frontmatter when non-empty.
	Title string
	// Direction of flow, default LR.
	Direction mermaid.Direction
	// Theme and Look are only emitted when the frontmatter is present.
	Theme mermaid.Theme
	Look  mermaid.Look
	// Layout selects the renderer; a non-default value forces the
	// frontmatter so the defaultRenderer override is carried.
	Layout mermaid.Layout
}

func (c Config) direction() mermaid.Direction { return cmp.Or(c.Direction, mermaid.DirectionLR) }
func (c Config) theme() mermaid.Theme         { return cmp.Or(c.Theme, mermaid.ThemeDefault) }
func (c Config) look() mermaid.Look           { return cmp.Or(c.Look, mermaid.LookClassic) }
func (c Config) layout() mermaid.Layout       { return cmp.Or(c.Layout, mermaid.LayoutDagre) }

// Builder accumulates a flowchart under construction.
type Builder struct {
	config Config
	graph  mermaid.Graph[Node, Edge]
}

// NewBuilder returns a Builder with the given options.
func NewBuilder(config Config) *Builder {
	return &Builder{config: config}
}

// AddNode validates and appends a node, returning its allocated id.
func (b *Builder) AddNode(nb *NodeBuilder) (mermaid.NodeID, error) {
	return b.graph.AppendNode(nb.build)
}

// AddEdge validates and appends an edge. Fails with MissingFieldError when
// a required attribute is unset and UnknownNodeError when an endpoint does
// not name a node of this builder.
func (b *Builder) AddEdge(eb *EdgeBuilder) error {
	e, err := eb.build()
	if err != nil {
		return err
	}
	return b.graph.AppendEdge(e)
}

// Build snapshots the builder into an immutable Diagram. The builder
// remains usable afterwards.
func (b *Builder) Build() *Diagram {
	return &Diagram{config: b.config, graph: b.graph.Finalize()}
}

// Diagram is a finalized flowchart. Safe for concurrent reads.
type Diagram struct {
	config Config
	graph  mermaid.Diagram[Node, Edge]
}

// Nodes returns the diagram's nodes in identifier order.
func (d *Diagram) Nodes() []Node { return d.graph.Nodes() }

// Edges returns the diagram's edges in insertion order.
func (d *Diagram) Edges() []Edge { return d.graph.Edges() }

// Render emits the diagram as Mermaid source text. The output is fully
// determined by the diagram's contents.
func (d *Diagram) Render() string {
	var buf bytes.Buffer

	// Frontmatter only carries information when the title is set or the
	// layout deviates from the default renderer.
	if d.config.Title != "" || d.config.layout() != mermaid.LayoutDagre {
		buf.WriteString("---\n")
		buf.WriteString("config:\n")
		fmt.Fprintf(&buf, "  theme: %s\n", d.config.theme())
		fmt.Fprintf(&buf, "  look: %s\n", d.config.look())
		buf.WriteString("  flowchart:\n")
		fmt.Fprintf(&buf, "    defaultRenderer: %q\n", d.config.layout())
		if d.config.Title != "" {
			fmt.Fprintf(&buf, "title: %s\n", d.config.Title)
		}
		buf.WriteString("---\n")
	}

	fmt.Fprintf(&buf, "flowchart %s\n", d.config.direction())

	for _, n := range d.graph.Nodes() {
		fmt.Fprintf(&buf, "%s@{shape: %s, label: \"%s\"}\n", n.ID(), n.Shape(), mermaid.EscapeLabel(n.Label()))
	}
	for _, e := range d.graph.Edges() {
		src, dst := e.Endpoints()
		label := ""
		if e.Label() != "" {
			label = fmt.Sprintf("|\"%s\"|", mermaid.EscapeLabel(e.Label()))
		}
		fmt.Fprintf(&buf, "%s %s%s %s\n", src, e.Arrow().Token(), label, dst)
	}

	return buf.String()
}
