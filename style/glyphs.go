package style

import (
	"errors"
	"fmt"
)

type (
	// Glyphs are the eleven plain border characters of a Style
	Glyphs struct {
		Horizontal  string
		Vertical    string
		TopLeft     string
		TopRight    string
		BottomLeft  string
		BottomRight string
		Cross       string
		TopEdge     string
		BottomEdge  string
		LeftEdge    string
		RightEdge   string
	}

	// Connection describes the eight edge junction glyphs that an owning
	// Style draws where its border meets a specific counterpart Style.
	// Each field is named for the edge and the side the counterpart is on
	Connection struct {
		TopEdgeConnLeft     string
		TopEdgeConnRight    string
		LeftEdgeConnUp      string
		LeftEdgeConnDown    string
		RightEdgeConnUp     string
		RightEdgeConnDown   string
		BottomEdgeConnLeft  string
		BottomEdgeConnRight string
	}
)

// ErrEmptyGlyph is raised when a Glyphs or Connection value is missing a
// character
var ErrEmptyGlyph = errors.New("glyph must not be empty")

// Glyph returns the plain glyph for a Direction. Connection Directions
// resolve to their plain base
func (g Glyphs) Glyph(d Direction) string {
	switch d.Plain() {
	case Horizontal:
		return g.Horizontal
	case Vertical:
		return g.Vertical
	case TopLeft:
		return g.TopLeft
	case TopRight:
		return g.TopRight
	case BottomLeft:
		return g.BottomLeft
	case BottomRight:
		return g.BottomRight
	case Cross:
		return g.Cross
	case TopEdge:
		return g.TopEdge
	case BottomEdge:
		return g.BottomEdge
	case LeftEdge:
		return g.LeftEdge
	case RightEdge:
		return g.RightEdge
	default:
		return ""
	}
}

// Validate ensures that none of the glyphs are empty
func (g Glyphs) Validate() error {
	for d := Horizontal; d <= RightEdge; d++ {
		if g.Glyph(d) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyGlyph, d)
		}
	}
	return nil
}

// DefaultConnection builds a Connection that draws the plain edge glyphs
// of g, making the junction indistinguishable from a same-style one
func DefaultConnection(g Glyphs) Connection {
	return Connection{
		TopEdgeConnLeft:     g.TopEdge,
		TopEdgeConnRight:    g.TopEdge,
		LeftEdgeConnUp:      g.LeftEdge,
		LeftEdgeConnDown:    g.LeftEdge,
		RightEdgeConnUp:     g.RightEdge,
		RightEdgeConnDown:   g.RightEdge,
		BottomEdgeConnLeft:  g.BottomEdge,
		BottomEdgeConnRight: g.BottomEdge,
	}
}

// Glyph returns the junction glyph for a connection Direction. The second
// result is false for plain Directions, which a Connection does not cover
func (c Connection) Glyph(d Direction) (string, bool) {
	switch d {
	case TopEdgeConnLeft:
		return c.TopEdgeConnLeft, true
	case TopEdgeConnRight:
		return c.TopEdgeConnRight, true
	case LeftEdgeConnUp:
		return c.LeftEdgeConnUp, true
	case LeftEdgeConnDown:
		return c.LeftEdgeConnDown, true
	case RightEdgeConnUp:
		return c.RightEdgeConnUp, true
	case RightEdgeConnDown:
		return c.RightEdgeConnDown, true
	case BottomEdgeConnLeft:
		return c.BottomEdgeConnLeft, true
	case BottomEdgeConnRight:
		return c.BottomEdgeConnRight, true
	default:
		return "", false
	}
}

// Validate ensures that none of the junction glyphs are empty
func (c Connection) Validate() error {
	for d := TopEdgeConnLeft; d <= BottomEdgeConnRight; d++ {
		if g, _ := c.Glyph(d); g == "" {
			return fmt.Errorf("%w: %s", ErrEmptyGlyph, d)
		}
	}
	return nil
}
