package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/boxgrid/style"
	"github.com/kode4food/boxgrid/style/config"

	internal "github.com/kode4food/boxgrid/internal/style"
	testutil "github.com/kode4food/boxgrid/internal/testing"
)

func standard(t *testing.T) style.Registry {
	t.Helper()
	r, err := internal.Make(config.Standard)
	assert.Nil(t, err)
	return r
}

func TestStandardRegistry(t *testing.T) {
	as := assert.New(t)
	r := standard(t)

	as.Equal([]style.Style{
		style.Text, style.RegularBox, style.BoldBox, style.DoubleBox,
	}, r.Styles())
	as.Equal(style.RegularBox, r.Default())
	as.True(r.Declared(style.DoubleBox))
	as.False(r.Declared(style.Style(9)))

	gs := r.GlyphSet(style.BoldBox)
	as.Equal(style.BoldBox, gs.Style())
	as.Equal("╋", gs.Glyph(style.Cross))
	as.Equal(config.BoldBoxGlyphs, gs.Glyphs())

	c, ok := gs.Connection(style.RegularBox)
	as.True(ok)
	as.Equal(config.BoldToRegular, c)
	_, ok = gs.Connection(style.DoubleBox)
	as.False(ok)

	styles := r.Styles()
	styles[0] = style.BoldBox
	as.Equal(style.Text, r.Styles()[0])
}

func TestSelfJunction(t *testing.T) {
	as := assert.New(t)
	r := standard(t)

	for _, s := range r.Styles() {
		gs := r.GlyphSet(s)
		for _, d := range style.Directions() {
			as.Equal(gs.Glyph(d), r.Resolve(s, d, s), "%s %s", s, d)
		}
	}
}

func TestJunctionFallback(t *testing.T) {
	as := assert.New(t)
	r := standard(t)

	for _, owner := range r.Styles() {
		gs := r.GlyphSet(owner)
		for _, peer := range r.Styles() {
			if _, ok := gs.Connection(peer); ok || peer == owner {
				continue
			}
			for _, d := range style.Directions() {
				as.Equal(gs.Glyph(d), r.Resolve(owner, d, peer),
					"%s %s %s", owner, d, peer,
				)
			}
		}
	}

	as.Equal("╦", r.Resolve(style.DoubleBox, style.TopEdgeConnLeft, style.BoldBox))
	as.Equal("┬", r.Resolve(style.RegularBox, style.TopEdgeConnLeft, style.DoubleBox))
	as.Equal("┴", r.Resolve(style.RegularBox, style.BottomEdge, style.Style(9)))
}

func TestWeightTransitions(t *testing.T) {
	as := assert.New(t)
	r := standard(t)

	reg, bold := style.RegularBox, style.BoldBox
	as.Equal("┱", r.Resolve(reg, style.TopEdgeConnLeft, bold))
	as.Equal("┲", r.Resolve(reg, style.TopEdgeConnRight, bold))
	as.Equal("┡", r.Resolve(reg, style.LeftEdgeConnUp, bold))
	as.Equal("┢", r.Resolve(reg, style.LeftEdgeConnDown, bold))
	as.Equal("┩", r.Resolve(reg, style.RightEdgeConnUp, bold))
	as.Equal("┪", r.Resolve(reg, style.RightEdgeConnDown, bold))
	as.Equal("┹", r.Resolve(reg, style.BottomEdgeConnLeft, bold))
	as.Equal("┺", r.Resolve(reg, style.BottomEdgeConnRight, bold))

	as.Equal("┮", r.Resolve(bold, style.TopEdgeConnLeft, reg))
	as.Equal("┭", r.Resolve(bold, style.TopEdgeConnRight, reg))
	as.Equal("┟", r.Resolve(bold, style.LeftEdgeConnUp, reg))
	as.Equal("┞", r.Resolve(bold, style.LeftEdgeConnDown, reg))
	as.Equal("┧", r.Resolve(bold, style.RightEdgeConnUp, reg))
	as.Equal("┦", r.Resolve(bold, style.RightEdgeConnDown, reg))
	as.Equal("┶", r.Resolve(bold, style.BottomEdgeConnLeft, reg))
	as.Equal("┵", r.Resolve(bold, style.BottomEdgeConnRight, reg))

	// plain directions are never affected by a junction table
	as.Equal("┼", r.Resolve(reg, style.Cross, bold))
	as.Equal("┃", r.Resolve(bold, style.Vertical, reg))
}

func TestAsymmetricJunction(t *testing.T) {
	as := assert.New(t)

	conn := style.DefaultConnection(config.RegularBoxGlyphs)
	conn.TopEdgeConnLeft = "X"
	r, err := internal.Make(
		config.Declare(style.RegularBox, config.RegularBoxGlyphs),
		config.Declare(style.BoldBox, config.BoldBoxGlyphs),
		config.Connect(style.RegularBox, style.BoldBox, conn),
		config.DefaultStyle(style.BoldBox),
	)
	as.Nil(err)
	as.Equal(style.BoldBox, r.Default())

	as.Equal("X", r.Resolve(style.RegularBox, style.TopEdgeConnLeft, style.BoldBox))
	as.Equal("┬", r.Resolve(style.RegularBox, style.TopEdgeConnRight, style.BoldBox))
	as.Equal("┳", r.Resolve(style.BoldBox, style.TopEdgeConnLeft, style.RegularBox))
	as.Equal("┬", r.Resolve(style.RegularBox, style.TopEdgeConnLeft, style.RegularBox))
}

func TestRegistryErrors(t *testing.T) {
	as := assert.New(t)

	r, err := internal.Make(
		config.Declare(style.RegularBox, config.RegularBoxGlyphs),
	)
	as.Nil(r)
	as.ErrorIs(err, internal.ErrDefaultRequired)

	_, err = internal.Make(
		config.Declare(style.RegularBox, config.RegularBoxGlyphs),
		config.DefaultStyle(style.BoldBox),
	)
	as.ErrorIs(err, style.ErrUnknownStyle)

	_, err = internal.Make(
		config.Declare(style.RegularBox, config.RegularBoxGlyphs),
		config.Connect(style.BoldBox, style.RegularBox, config.BoldToRegular),
		config.DefaultStyle(style.RegularBox),
	)
	as.ErrorIs(err, internal.ErrUndeclaredOwner)

	_, err = internal.Make(
		config.Declare(style.RegularBox, config.RegularBoxGlyphs),
		config.Connect(style.RegularBox, style.BoldBox, config.RegularToBold),
		config.DefaultStyle(style.RegularBox),
	)
	as.ErrorIs(err, internal.ErrUndeclaredPeer)

	_, err = internal.Make(config.Standard, config.DefaultStyle(style.Text))
	as.ErrorIs(err, config.ErrDefaultAlreadySet)
}

func TestUnknownStylePanics(t *testing.T) {
	as := assert.New(t)
	r := standard(t)

	as.PanicsWithError(
		"style not declared: Style(9)",
		func() { r.GlyphSet(style.Style(9)) },
	)

	defer func() {
		rec := recover()
		as.NotNil(rec)
		as.ErrorIs(rec.(error), style.ErrUnknownStyle)
	}()
	r.Resolve(style.Style(9), style.Cross, style.RegularBox)
}

func TestRegistryLogs(t *testing.T) {
	as := assert.New(t)

	logs, restore := testutil.CaptureLogs()
	defer restore()

	standard(t)
	as.Contains(logs.Messages(), "style registry built")
	v, ok := logs.Attr("style registry built", "styles")
	as.True(ok)
	as.Equal(int64(4), v.Int64())
}
