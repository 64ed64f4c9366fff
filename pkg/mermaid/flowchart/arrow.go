package flowchart

import "fmt"

// Arrow identifies the head drawn at the destination end of a flowchart link.
type Arrow string

const (
	// ArrowOpen draws a headless link.
	ArrowOpen Arrow = "open"
	// ArrowNormal draws a standard pointed head.
	ArrowNormal Arrow = "normal"
	// ArrowCircle draws a circle head.
	ArrowCircle Arrow = "circle"
	// ArrowCross draws an x head.
	ArrowCross Arrow = "cross"
)

// Arrows lists every defined arrow in a stable order.
func Arrows() []Arrow {
	return []Arrow{ArrowOpen, ArrowNormal, ArrowCircle, ArrowCross}
}

// Token returns the full link token: a three-dash segment followed by the
// head character, if any.
func (a Arrow) Token() string {
	switch a {
	case ArrowOpen:
		return "---"
	case ArrowNormal:
		return "--->"
	case ArrowCircle:
		return "---o"
	case ArrowCross:
		return "---x"
	}
	return ""
}

// ParseArrow maps an arrow name to an Arrow.
func ParseArrow(s string) (Arrow, error) {
	switch a := Arrow(s); a {
	case ArrowOpen, ArrowNormal, ArrowCircle, ArrowCross:
		return a, nil
	}
	return "", fmt.Errorf("unknown arrow %q", s)
}
