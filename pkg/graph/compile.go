package graph

import (
	"cmp"
	"fmt"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
	"github.com/matzehuels/mermaidgen/pkg/mermaid/classdiagram"
	"github.com/matzehuels/mermaidgen/pkg/mermaid/er"
	"github.com/matzehuels/mermaidgen/pkg/mermaid/flowchart"
)

// ErrUnknownDialect reports a Document whose Dialect names no supported
// diagram grammar.
var ErrUnknownDialect = fmt.Errorf("unknown dialect")

// Compile builds the diagram a Document describes and returns its rendered
// Mermaid text. Validation failures from the builders (missing fields,
// dangling edge references, bad enum tokens) are returned with positional
// context.
func Compile(doc Document) (string, error) {
	switch doc.Dialect {
	case DialectFlowchart:
		return compileFlowchart(doc)
	case DialectClass:
		return compileClass(doc)
	case DialectER:
		return compileER(doc)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDialect, doc.Dialect)
}

func parseDirection(s string) (mermaid.Direction, error) {
	if s == "" {
		return "", nil
	}
	return mermaid.ParseDirection(s)
}

func compileFlowchart(doc Document) (string, error) {
	config := flowchart.Config{Title: doc.Title}
	var err error
	if config.Direction, err = parseDirection(doc.Direction); err != nil {
		return "", err
	}
	if doc.Theme != "" {
		if config.Theme, err = mermaid.ParseTheme(doc.Theme); err != nil {
			return "", err
		}
	}
	if doc.Look != "" {
		if config.Look, err = mermaid.ParseLook(doc.Look); err != nil {
			return "", err
		}
	}
	if doc.Layout != "" {
		if config.Layout, err = mermaid.ParseLayout(doc.Layout); err != nil {
			return "", err
		}
	}

	b := flowchart.NewBuilder(config)
	for i, n := range doc.Nodes {
		nb := flowchart.NewNode().Label(n.Label)
		if n.Shape != "" {
			shape, err := flowchart.ParseShape(n.Shape)
			if err != nil {
				return "", fmt.Errorf("node %d: %w", i, err)
			}
			nb.Shape(shape)
		}
		if _, err := b.AddNode(nb); err != nil {
			return "", fmt.Errorf("node %d: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		eb := flowchart.NewEdge().
			Source(mermaid.NodeID(e.From)).
			Destination(mermaid.NodeID(e.To)).
			Label(e.Label)
		if e.Arrow != "" {
			arrow, err := flowchart.ParseArrow(e.Arrow)
			if err != nil {
				return "", fmt.Errorf("edge %d: %w", i, err)
			}
			eb.Arrow(arrow)
		}
		if err := b.AddEdge(eb); err != nil {
			return "", fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return b.Build().Render(), nil
}

func compileClass(doc Document) (string, error) {
	config := classdiagram.Config{Title: doc.Title, HideEmptyMembersBox: doc.HideEmptyMembers}
	var err error
	if config.Direction, err = parseDirection(doc.Direction); err != nil {
		return "", err
	}

	b := classdiagram.NewBuilder(config)
	for i, n := range doc.Nodes {
		nb := classdiagram.NewNode().Label(n.Label)
		for _, m := range n.Members {
			nb.Member(m)
		}
		if _, err := b.AddNode(nb); err != nil {
			return "", fmt.Errorf("node %d: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		eb := classdiagram.NewEdge().
			Source(mermaid.NodeID(e.From)).
			Destination(mermaid.NodeID(e.To)).
			Label(e.Label)
		if e.Arrow != "" {
			arrow, err := classdiagram.ParseArrow(e.Arrow)
			if err != nil {
				return "", fmt.Errorf("edge %d: %w", i, err)
			}
			eb.Arrow(arrow)
		}
		if err := b.AddEdge(eb); err != nil {
			return "", fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return b.Build().Render(), nil
}

func compileER(doc Document) (string, error) {
	config := er.Config{Title: doc.Title}
	var err error
	if config.Direction, err = parseDirection(doc.Direction); err != nil {
		return "", err
	}
	if doc.Theme != "" {
		if config.Theme, err = mermaid.ParseTheme(doc.Theme); err != nil {
			return "", err
		}
	}
	if doc.Look != "" {
		if config.Look, err = mermaid.ParseLook(doc.Look); err != nil {
			return "", err
		}
	}
	if doc.Layout != "" {
		if config.Layout, err = mermaid.ParseLayout(doc.Layout); err != nil {
			return "", err
		}
	}

	b := er.NewBuilder(config)
	for i, n := range doc.Nodes {
		if _, err := b.AddNode(er.NewNode().Label(n.Label)); err != nil {
			return "", fmt.Errorf("node %d: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		eb := er.NewEdge().
			Source(mermaid.NodeID(e.From)).
			Destination(mermaid.NodeID(e.To)).
			Label(e.Label)

		leftName := cmp.Or(e.Left, e.Cardinality)
		rightName := cmp.Or(e.Right, e.Cardinality)
		if leftName != "" || rightName != "" {
			left, err := er.ParseCardinality(leftName)
			if err != nil {
				return "", fmt.Errorf("edge %d: %w", i, err)
			}
			right, err := er.ParseCardinality(rightName)
			if err != nil {
				return "", fmt.Errorf("edge %d: %w", i, err)
			}
			eb.Cardinality(left, right)
		}
		if err := b.AddEdge(eb); err != nil {
			return "", fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return b.Build().Render(), nil
}
