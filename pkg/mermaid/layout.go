package mermaid

import "fmt"

// Layout selects the automatic layout engine named in the diagram
// frontmatter.
type Layout string

const (
	LayoutDagre Layout = "dagre"
	LayoutELK   Layout = "elk"
)

// ParseLayout maps a token to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case LayoutDagre, LayoutELK:
		return l, nil
	}
	return "", fmt.Errorf("unknown layout %q", s)
}
