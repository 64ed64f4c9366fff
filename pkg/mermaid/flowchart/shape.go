package flowchart

import (
	"fmt"
	"strings"
)

// Shape identifies a flowchart node shape. The value is the canonical token
// written into the node statement's shape field.
type Shape string

// The full shape vocabulary Mermaid flowcharts accept, keyed by canonical
// token. ShapeRectangle is the default applied when a node sets no shape.
const (
	ShapeRectangle        Shape = "rect"
	ShapeRounded          Shape = "rounded"
	ShapeStadium          Shape = "stadium"
	ShapeSubprocess       Shape = "subproc"
	ShapeCylinder         Shape = "cyl"
	ShapeCircle           Shape = "circle"
	ShapeOdd              Shape = "odd"
	ShapeDiamond          Shape = "diamond"
	ShapeHexagon          Shape = "hex"
	ShapeLeanRight        Shape = "lean-r"
	ShapeLeanLeft         Shape = "lean-l"
	ShapeTrapezoid        Shape = "trap-b"
	ShapeReverseTrapezoid Shape = "trap-t"
	ShapeDoubleCircle     Shape = "dbl-circ"
	ShapeNotchedRectangle Shape = "notch-rect"
	ShapeLinedRectangle   Shape = "lin-rect"
	ShapeSmallCircle      Shape = "sm-circ"
	ShapeFramedCircle     Shape = "framed-circle"
	ShapeFork             Shape = "fork"
	ShapeHourglass        Shape = "hourglass"
	ShapeComment          Shape = "comment"
	ShapeBraceRight       Shape = "brace-r"
	ShapeBraces           Shape = "braces"
	ShapeBolt             Shape = "bolt"
	ShapeDocument         Shape = "doc"
	ShapeDelay            Shape = "delay"
	ShapeDAS              Shape = "das"
	ShapeLinedCylinder    Shape = "lin-cyl"
	ShapeCurvedTrapezoid  Shape = "curv-trap"
	ShapeDividedRectangle Shape = "div-rect"
	ShapeTriangle         Shape = "tri"
	ShapeWindowPane       Shape = "win-pane"
	ShapeFilledCircle     Shape = "f-circ"
	ShapeLinedDocument    Shape = "lin-doc"
	ShapeNotchedPentagon  Shape = "notch-pent"
	ShapeFlippedTriangle  Shape = "flip-tri"
	ShapeSlopedRectangle  Shape = "sl-rect"
	ShapeStackedDocument  Shape = "docs"
	ShapeStackedRectangle Shape = "processes"
	ShapeFlag             Shape = "flag"
	ShapeBowTieRectangle  Shape = "bow-rect"
	ShapeCrossedCircle    Shape = "cross-circ"
	ShapeTaggedDocument   Shape = "tag-doc"
	ShapeTaggedRectangle  Shape = "tag-rect"
	ShapeFramedRectangle  Shape = "fr-rect"
	ShapeTextBlock        Shape = "text"
)

// Shapes lists every defined shape in a stable order.
func Shapes() []Shape {
	return []Shape{
		ShapeRectangle, ShapeRounded, ShapeStadium, ShapeSubprocess,
		ShapeCylinder, ShapeCircle, ShapeOdd, ShapeDiamond, ShapeHexagon,
		ShapeLeanRight, ShapeLeanLeft, ShapeTrapezoid, ShapeReverseTrapezoid,
		ShapeDoubleCircle, ShapeNotchedRectangle, ShapeLinedRectangle,
		ShapeSmallCircle, ShapeFramedCircle, ShapeFork, ShapeHourglass,
		ShapeComment, ShapeBraceRight, ShapeBraces, ShapeBolt, ShapeDocument,
		ShapeDelay, ShapeDAS, ShapeLinedCylinder, ShapeCurvedTrapezoid,
		ShapeDividedRectangle, ShapeTriangle, ShapeWindowPane,
		ShapeFilledCircle, ShapeLinedDocument, ShapeNotchedPentagon,
		ShapeFlippedTriangle, ShapeSlopedRectangle, ShapeStackedDocument,
		ShapeStackedRectangle, ShapeFlag, ShapeBowTieRectangle,
		ShapeCrossedCircle, ShapeTaggedDocument, ShapeTaggedRectangle,
		ShapeFramedRectangle, ShapeTextBlock,
	}
}

// shapeAliases maps every accepted spelling, lowercased, to its canonical
// shape. Canonical tokens are included so ParseShape(string(s)) round-trips.
var shapeAliases = map[string]Shape{
	"rect": ShapeRectangle, "rectangle": ShapeRectangle, "proc": ShapeRectangle, "process": ShapeRectangle,
	"rounded": ShapeRounded, "event": ShapeRounded,
	"stadium": ShapeStadium, "pill": ShapeStadium, "terminal": ShapeStadium,
	"subproc": ShapeSubprocess, "subprocess": ShapeSubprocess, "subroutine": ShapeSubprocess, "framed-rectangle": ShapeSubprocess,
	"cyl": ShapeCylinder, "cylinder": ShapeCylinder, "database": ShapeCylinder, "db": ShapeCylinder,
	"circle": ShapeCircle, "circ": ShapeCircle,
	"odd":     ShapeOdd,
	"diamond": ShapeDiamond, "diam": ShapeDiamond, "decision": ShapeDiamond, "question": ShapeDiamond,
	"hex": ShapeHexagon, "hexagon": ShapeHexagon, "prepare": ShapeHexagon,
	"lean-r": ShapeLeanRight, "lean-right": ShapeLeanRight, "in-out": ShapeLeanRight,
	"lean-l": ShapeLeanLeft, "lean-left": ShapeLeanLeft, "out-in": ShapeLeanLeft,
	"trap-b": ShapeTrapezoid, "trapezoid": ShapeTrapezoid, "priority": ShapeTrapezoid, "trapezoid-bottom": ShapeTrapezoid,
	"trap-t": ShapeReverseTrapezoid, "inv-trapezoid": ShapeReverseTrapezoid, "manual": ShapeReverseTrapezoid, "trapezoid-top": ShapeReverseTrapezoid,
	"dbl-circ": ShapeDoubleCircle, "double-circle": ShapeDoubleCircle, "stop": ShapeDoubleCircle,
	"notch-rect": ShapeNotchedRectangle, "card": ShapeNotchedRectangle, "notched-rectangle": ShapeNotchedRectangle,
	"lin-rect": ShapeLinedRectangle, "lin-proc": ShapeLinedRectangle, "lined-process": ShapeLinedRectangle, "lined-rectangle": ShapeLinedRectangle, "shaded-process": ShapeLinedRectangle,
	"sm-circ": ShapeSmallCircle, "small-circle": ShapeSmallCircle, "start": ShapeSmallCircle,
	"framed-circle": ShapeFramedCircle, "fr-circ": ShapeFramedCircle,
	"fork": ShapeFork, "join": ShapeFork,
	"hourglass": ShapeHourglass, "collate": ShapeHourglass,
	"comment": ShapeComment, "brace-l": ShapeComment,
	"brace-r": ShapeBraceRight,
	"braces":  ShapeBraces,
	"bolt":    ShapeBolt, "com-link": ShapeBolt, "lightning-bolt": ShapeBolt,
	"doc": ShapeDocument, "document": ShapeDocument,
	"delay": ShapeDelay, "half-rounded-rectangle": ShapeDelay,
	"das": ShapeDAS, "h-cyl": ShapeDAS, "horizontal-cylinder": ShapeDAS,
	"lin-cyl": ShapeLinedCylinder, "disk": ShapeLinedCylinder, "lined-cylinder": ShapeLinedCylinder,
	"curv-trap": ShapeCurvedTrapezoid, "curved-trapezoid": ShapeCurvedTrapezoid, "display": ShapeCurvedTrapezoid,
	"div-rect": ShapeDividedRectangle, "div-proc": ShapeDividedRectangle, "divided-process": ShapeDividedRectangle, "divided-rectangle": ShapeDividedRectangle,
	"tri": ShapeTriangle, "extract": ShapeTriangle, "triangle": ShapeTriangle,
	"win-pane": ShapeWindowPane, "internal-storage": ShapeWindowPane, "window-pane": ShapeWindowPane,
	"f-circ": ShapeFilledCircle, "filled-circle": ShapeFilledCircle, "junction": ShapeFilledCircle,
	"lin-doc": ShapeLinedDocument, "lined-document": ShapeLinedDocument,
	"notch-pent": ShapeNotchedPentagon, "loop-limit": ShapeNotchedPentagon, "notched-pentagon": ShapeNotchedPentagon,
	"flip-tri": ShapeFlippedTriangle, "flipped-triangle": ShapeFlippedTriangle, "manual-file": ShapeFlippedTriangle,
	"sl-rect": ShapeSlopedRectangle, "manual-input": ShapeSlopedRectangle, "sloped-rectangle": ShapeSlopedRectangle,
	"docs": ShapeStackedDocument, "documents": ShapeStackedDocument, "st-doc": ShapeStackedDocument, "stacked-document": ShapeStackedDocument,
	"processes": ShapeStackedRectangle, "procs": ShapeStackedRectangle, "st-rect": ShapeStackedRectangle, "stacked-rectangle": ShapeStackedRectangle,
	"flag": ShapeFlag, "paper-tape": ShapeFlag,
	"bow-rect": ShapeBowTieRectangle, "bow-tie-rectangle": ShapeBowTieRectangle, "stored-data": ShapeBowTieRectangle,
	"cross-circ": ShapeCrossedCircle, "crossed-circle": ShapeCrossedCircle, "summary": ShapeCrossedCircle,
	"tag-doc": ShapeTaggedDocument, "tagged-document": ShapeTaggedDocument,
	"tag-rect": ShapeTaggedRectangle, "tag-proc": ShapeTaggedRectangle, "tagged-process": ShapeTaggedRectangle, "tagged-rectangle": ShapeTaggedRectangle,
	"fr-rect": ShapeFramedRectangle,
	"text":    ShapeTextBlock, "text-block": ShapeTextBlock,
}

// ParseShape resolves a shape name, accepting common aliases in addition to
// the canonical tokens. Matching is case-insensitive.
func ParseShape(s string) (Shape, error) {
	if shape, ok := shapeAliases[strings.ToLower(s)]; ok {
		return shape, nil
	}
	return "", fmt.Errorf("unknown shape %q", s)
}
