package classdiagram

import "fmt"

// Arrow identifies the relationship kind drawn between two classes.
type Arrow string

const (
	// ArrowAssociation draws a plain pointed arrow.
	ArrowAssociation Arrow = "association"
	// ArrowInheritance draws a hollow triangle head.
	ArrowInheritance Arrow = "inheritance"
	// ArrowAggregation draws a circle head.
	ArrowAggregation Arrow = "aggregation"
	// ArrowComposition draws a filled star head.
	ArrowComposition Arrow = "composition"
)

// Arrows lists every defined arrow in a stable order.
func Arrows() []Arrow {
	return []Arrow{ArrowAssociation, ArrowInheritance, ArrowAggregation, ArrowComposition}
}

// Token returns the full relationship token: the two-dash segment followed
// by the head.
func (a Arrow) Token() string {
	switch a {
	case ArrowAssociation:
		return "-->"
	case ArrowInheritance:
		return "--|>"
	case ArrowAggregation:
		return "--o"
	case ArrowComposition:
		return "--*"
	}
	return ""
}

// ParseArrow maps an arrow name to an Arrow.
func ParseArrow(s string) (Arrow, error) {
	switch a := Arrow(s); a {
	case ArrowAssociation, ArrowInheritance, ArrowAggregation, ArrowComposition:
		return a, nil
	}
	return "", fmt.Errorf("unknown arrow %q", s)
}
