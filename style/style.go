package style

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// Style names a border drawing theme
	Style uint8

	// GlyphSet is the immutable set of glyphs that a Registry holds for a
	// single Style, along with that Style's junction table
	GlyphSet interface {
		// Style returns the Style that owns this GlyphSet
		Style() Style

		// Glyph returns the plain glyph for a Direction. Connection
		// Directions return the glyph of their plain base Direction
		Glyph(Direction) string

		// Glyphs returns a copy of the eleven plain glyphs
		Glyphs() Glyphs

		// Connection returns the junction table entry for a counterpart
		// Style, if one was declared
		Connection(Style) (Connection, bool)
	}

	// Registry owns the GlyphSet of every declared Style and answers which
	// glyph joins two Styles at a border intersection. A Registry is
	// immutable once built and may be shared freely between goroutines
	Registry interface {
		// Styles returns the declared Styles in ascending order
		Styles() []Style

		// Default returns the Style assigned to new grid cells
		Default() Style

		// Declared reports whether the Style has a GlyphSet
		Declared(Style) bool

		// GlyphSet returns the GlyphSet for a Style. Requesting an
		// undeclared Style is an invariant violation and panics
		GlyphSet(Style) GlyphSet

		// Resolve returns the glyph that the owner Style draws in the
		// given Direction when its border meets the counterpart Style
		Resolve(owner Style, d Direction, counterpart Style) string
	}
)

// Styles
const (
	Text Style = iota
	RegularBox
	BoldBox
	DoubleBox
)

// Error messages
var (
	ErrUnknownStyle = errors.New("style not declared")
	ErrBadStyleName = errors.New("unrecognized style name")
)

var styleNames = map[Style]string{
	Text:       "text",
	RegularBox: "regular",
	BoldBox:    "bold",
	DoubleBox:  "double",
}

// ParseStyle returns the Style with the given name, ignoring case
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, sn := range styleNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyleName, name)
}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}
