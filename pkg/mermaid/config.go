package mermaid

import (
	"fmt"
	"io"
)

// Config carries the renderer options shared by every dialect. It is
// serialized as YAML frontmatter ahead of the diagram body.
type Config struct {
	Layout Layout
	Theme  Theme
	Look   Look
}

// DefaultConfig returns the options Mermaid itself would assume when no
// frontmatter is present.
func DefaultConfig() Config {
	return Config{Layout: LayoutDagre, Theme: ThemeDefault, Look: LookClassic}
}

// WriteFrontmatter emits the config as a frontmatter block, including the
// opening and closing delimiter lines.
func (c Config) WriteFrontmatter(w io.Writer) {
	fmt.Fprintln(w, "---")
	fmt.Fprintln(w, "config:")
	fmt.Fprintf(w, "  layout: %s\n", c.Layout)
	fmt.Fprintf(w, "  theme: %s\n", c.Theme)
	fmt.Fprintf(w, "  look: %s\n", c.Look)
	fmt.Fprintln(w, "---")
}
