package style

import "fmt"

// Direction identifies which glyph of a GlyphSet is being requested. The
// first eleven Directions are plain glyphs. The remaining eight are
// connection Directions, naming an edge junction and the side on which
// the counterpart Style lies
type Direction uint8

// Plain Directions
const (
	Horizontal Direction = iota
	Vertical
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Cross
	TopEdge
	BottomEdge
	LeftEdge
	RightEdge
)

// Connection Directions
const (
	TopEdgeConnLeft Direction = iota + RightEdge + 1
	TopEdgeConnRight
	LeftEdgeConnUp
	LeftEdgeConnDown
	RightEdgeConnUp
	RightEdgeConnDown
	BottomEdgeConnLeft
	BottomEdgeConnRight
)

var directionNames = [...]string{
	"horizontal",
	"vertical",
	"top-left",
	"top-right",
	"bottom-left",
	"bottom-right",
	"cross",
	"top-edge",
	"bottom-edge",
	"left-edge",
	"right-edge",
	"top-edge-conn-left",
	"top-edge-conn-right",
	"left-edge-conn-up",
	"left-edge-conn-down",
	"right-edge-conn-up",
	"right-edge-conn-down",
	"bottom-edge-conn-left",
	"bottom-edge-conn-right",
}

// Directions returns every Direction, plain ones first
func Directions() []Direction {
	res := make([]Direction, len(directionNames))
	for i := range res {
		res[i] = Direction(i)
	}
	return res
}

// IsConnection reports whether the Direction names a cross-style junction
func (d Direction) IsConnection() bool {
	return d >= TopEdgeConnLeft && d <= BottomEdgeConnRight
}

// Plain returns the plain edge Direction that a connection Direction
// falls back to. Plain Directions return themselves
func (d Direction) Plain() Direction {
	switch d {
	case TopEdgeConnLeft, TopEdgeConnRight:
		return TopEdge
	case LeftEdgeConnUp, LeftEdgeConnDown:
		return LeftEdge
	case RightEdgeConnUp, RightEdgeConnDown:
		return RightEdge
	case BottomEdgeConnLeft, BottomEdgeConnRight:
		return BottomEdge
	default:
		return d
	}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
