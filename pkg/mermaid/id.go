package mermaid

import "fmt"

// NodeID identifies a node within a single diagram builder.
// IDs are dense, zero-based, assigned in insertion order, and never reused.
// They are not unique across builders: each diagram allocates its own
// sequence starting at zero.
type NodeID int

// String returns the textual form used in Mermaid output, e.g. "v0".
func (id NodeID) String() string {
	return fmt.Sprintf("v%d", int(id))
}
