package graph

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Dialect names accepted in a Document.
const (
	DialectFlowchart = "flowchart"
	DialectClass     = "class"
	DialectER        = "er"
)

// Dialects lists the supported dialect names.
func Dialects() []string {
	return []string{DialectFlowchart, DialectClass, DialectER}
}

// =============================================================================
// Document - Diagram Serialization
// =============================================================================

// Document is the canonical serialization format for diagram descriptions.
// Used for API requests, storage, caching, and file round-trips.
//
// Node identifiers are implicit: a node's position in Nodes is its id, and
// edges reference nodes by that index. This mirrors the dense id allocation
// of the builders, so a valid Document compiles without id remapping.
type Document struct {
	Dialect   string `json:"dialect" bson:"dialect"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Direction string `json:"direction,omitempty" bson:"direction,omitempty"`
	Theme     string `json:"theme,omitempty" bson:"theme,omitempty"`
	Look      string `json:"look,omitempty" bson:"look,omitempty"`
	Layout    string `json:"layout,omitempty" bson:"layout,omitempty"`

	// HideEmptyMembers applies to the class dialect only.
	HideEmptyMembers bool `json:"hide_empty_members,omitempty" bson:"hide_empty_members,omitempty"`

	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges,omitempty" bson:"edges,omitempty"`
}

// =============================================================================
// Node - Unified Node Type
// =============================================================================

// Node describes one diagram node. Label is required by every dialect;
// the remaining fields apply to specific dialects and are ignored elsewhere.
type Node struct {
	Label string `json:"label" bson:"label"`
	// Shape names a flowchart shape, canonical token or alias.
	Shape string `json:"shape,omitempty" bson:"shape,omitempty"`
	// Members are class body lines, rendered in order.
	Members []string `json:"members,omitempty" bson:"members,omitempty"`
}

// =============================================================================
// Edge - Node Connection
// =============================================================================

// Edge describes one connection between two nodes, referenced by index
// into the owning Document's Nodes slice.
type Edge struct {
	From int `json:"from" bson:"from"`
	To   int `json:"to" bson:"to"`
	// Arrow names the relationship kind for flowchart and class edges.
	Arrow string `json:"arrow,omitempty" bson:"arrow,omitempty"`
	// Cardinality names a symmetric ER relationship. Left/Right override
	// it per side for asymmetric pairs.
	Cardinality string `json:"cardinality,omitempty" bson:"cardinality,omitempty"`
	Left        string `json:"left,omitempty" bson:"left,omitempty"`
	Right       string `json:"right,omitempty" bson:"right,omitempty"`
	Label       string `json:"label,omitempty" bson:"label,omitempty"`
}
