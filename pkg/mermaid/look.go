package mermaid

import "fmt"

// Look selects the drawing style applied on top of the theme.
type Look string

const (
	LookNeo       Look = "neo"
	LookHandDrawn Look = "handDrawn"
	LookClassic   Look = "classic"
)

// ParseLook maps a token to a Look.
func ParseLook(s string) (Look, error) {
	switch l := Look(s); l {
	case LookNeo, LookHandDrawn, LookClassic:
		return l, nil
	}
	return "", fmt.Errorf("unknown look %q", s)
}
