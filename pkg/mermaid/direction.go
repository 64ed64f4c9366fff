package mermaid

import "fmt"

// Direction controls the flow axis of a diagram. The value is the literal
// token emitted into the Mermaid text.
type Direction string

const (
	DirectionLR Direction = "LR"
	DirectionTB Direction = "TB"
	DirectionRL Direction = "RL"
	DirectionBT Direction = "BT"
)

// ParseDirection maps a case-sensitive token to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionLR, DirectionTB, DirectionRL, DirectionBT:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}
