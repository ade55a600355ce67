package config

import "github.com/kode4food/boxgrid/style"

// Glyphs of the built-in Styles
var (
	TextGlyphs = style.Glyphs{
		Horizontal:  " ",
		Vertical:    " ",
		TopLeft:     " ",
		TopRight:    " ",
		BottomLeft:  " ",
		BottomRight: " ",
		Cross:       " ",
		TopEdge:     " ",
		BottomEdge:  " ",
		LeftEdge:    " ",
		RightEdge:   " ",
	}

	RegularBoxGlyphs = style.Glyphs{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
		Cross:       "┼",
		TopEdge:     "┬",
		BottomEdge:  "┴",
		LeftEdge:    "├",
		RightEdge:   "┤",
	}

	BoldBoxGlyphs = style.Glyphs{
		Horizontal:  "━",
		Vertical:    "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
		Cross:       "╋",
		TopEdge:     "┳",
		BottomEdge:  "┻",
		LeftEdge:    "┣",
		RightEdge:   "┫",
	}

	DoubleBoxGlyphs = style.Glyphs{
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
		Cross:       "╬",
		TopEdge:     "╦",
		BottomEdge:  "╩",
		LeftEdge:    "╠",
		RightEdge:   "╣",
	}
)

// Junction glyphs of the built-in Styles. The side on which the bold
// counterpart lies is drawn heavy, and the rest light
var (
	RegularToBold = style.Connection{
		TopEdgeConnLeft:     "┱",
		TopEdgeConnRight:    "┲",
		LeftEdgeConnUp:      "┡",
		LeftEdgeConnDown:    "┢",
		RightEdgeConnUp:     "┩",
		RightEdgeConnDown:   "┪",
		BottomEdgeConnLeft:  "┹",
		BottomEdgeConnRight: "┺",
	}

	BoldToRegular = style.Connection{
		TopEdgeConnLeft:     "┮",
		TopEdgeConnRight:    "┭",
		LeftEdgeConnUp:      "┟",
		LeftEdgeConnDown:    "┞",
		RightEdgeConnUp:     "┧",
		RightEdgeConnDown:   "┦",
		BottomEdgeConnLeft:  "┶",
		BottomEdgeConnRight: "┵",
	}
)

// Standard declares the built-in Styles with RegularBox as the default.
// Unicode has no tees that are half double and half single, so DoubleBox
// junctions fall back to plain glyphs
var Standard = Combine(
	Declare(style.Text, TextGlyphs),
	Declare(style.RegularBox, RegularBoxGlyphs),
	Declare(style.BoldBox, BoldBoxGlyphs),
	Declare(style.DoubleBox, DoubleBoxGlyphs),
	Connect(style.RegularBox, style.BoldBox, RegularToBold),
	Connect(style.BoldBox, style.RegularBox, BoldToRegular),
	DefaultStyle(style.RegularBox),
)
