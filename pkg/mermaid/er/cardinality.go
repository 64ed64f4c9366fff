package er

import "fmt"

// Cardinality is one side of an entity relationship, drawn in crow's-foot
// notation. Each value has distinct left and right tokens because the
// symbols mirror around the connecting segment.
type Cardinality string

const (
	ExactlyOne Cardinality = "exactly-one"
	ZeroOrOne  Cardinality = "zero-or-one"
	ZeroOrMore Cardinality = "zero-or-more"
	OneOrMore  Cardinality = "one-or-more"
)

// Cardinalities lists every defined cardinality in a stable order.
func Cardinalities() []Cardinality {
	return []Cardinality{ExactlyOne, ZeroOrOne, ZeroOrMore, OneOrMore}
}

// Left returns the token drawn on the source side of the segment.
func (c Cardinality) Left() string {
	switch c {
	case ExactlyOne:
		return "||"
	case ZeroOrOne:
		return "|o"
	case ZeroOrMore:
		return "}o"
	case OneOrMore:
		return "}|"
	}
	return ""
}

// Right returns the token drawn on the destination side of the segment.
func (c Cardinality) Right() string {
	switch c {
	case ExactlyOne:
		return "||"
	case ZeroOrOne:
		return "o|"
	case ZeroOrMore:
		return "o{"
	case OneOrMore:
		return "|{"
	}
	return ""
}

// ParseCardinality maps a cardinality name to a Cardinality.
func ParseCardinality(s string) (Cardinality, error) {
	switch c := Cardinality(s); c {
	case ExactlyOne, ZeroOrOne, ZeroOrMore, OneOrMore:
		return c, nil
	}
	return "", fmt.Errorf("unknown cardinality %q", s)
}
