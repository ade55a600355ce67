package style

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kode4food/boxgrid/style"
	"github.com/kode4food/boxgrid/style/config"
)

type (
	// Registry is the internal implementation of a style.Registry
	Registry struct {
		sets   map[style.Style]*glyphSet
		styles []style.Style
		def    style.Style
	}

	glyphSet struct {
		style       style.Style
		glyphs      style.Glyphs
		connections map[style.Style]style.Connection
	}
)

// Error messages
var (
	ErrDefaultRequired = errors.New("a default style is required")
	ErrUndeclaredOwner = errors.New("connection owner not declared")
	ErrUndeclaredPeer  = errors.New("connection counterpart not declared")
)

// Make builds an immutable Registry from a set of Options
func Make(o ...config.Option) (style.Registry, error) {
	cfg := config.Make()
	for _, opt := range o {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := check(cfg); err != nil {
		return nil, err
	}

	res := &Registry{
		sets: make(map[style.Style]*glyphSet, len(cfg.Glyphs)),
		def:  cfg.Default,
	}
	for s, g := range cfg.Glyphs {
		conns := map[style.Style]style.Connection{}
		for peer, c := range cfg.Connections[s] {
			conns[peer] = c
		}
		res.sets[s] = &glyphSet{
			style:       s,
			glyphs:      g,
			connections: conns,
		}
		res.styles = append(res.styles, s)
	}
	slices.Sort(res.styles)

	slog.Debug("style registry built",
		"styles", len(res.styles), "default", res.def,
	)
	return res, nil
}

func check(cfg *config.Config) error {
	if !cfg.DefaultSet {
		return ErrDefaultRequired
	}
	if _, ok := cfg.Glyphs[cfg.Default]; !ok {
		return fmt.Errorf("%w: %s", style.ErrUnknownStyle, cfg.Default)
	}
	for owner, table := range cfg.Connections {
		if _, ok := cfg.Glyphs[owner]; !ok {
			return fmt.Errorf("%w: %s", ErrUndeclaredOwner, owner)
		}
		for peer := range table {
			if _, ok := cfg.Glyphs[peer]; !ok {
				return fmt.Errorf("%w: %s to %s", ErrUndeclaredPeer, owner, peer)
			}
		}
	}
	return nil
}

func (r *Registry) Styles() []style.Style {
	return slices.Clone(r.styles)
}

func (r *Registry) Default() style.Style {
	return r.def
}

func (r *Registry) Declared(s style.Style) bool {
	_, ok := r.sets[s]
	return ok
}

func (r *Registry) GlyphSet(s style.Style) style.GlyphSet {
	return r.mustGet(s)
}

// Resolve returns the owner's plain glyph when both sides share a Style
// or when the owner declares no junction for the counterpart. Otherwise
// the owner's junction table entry supplies the glyph
func (r *Registry) Resolve(
	owner style.Style, d style.Direction, counterpart style.Style,
) string {
	gs := r.mustGet(owner)
	if owner == counterpart {
		return gs.glyphs.Glyph(d)
	}
	if c, ok := gs.connections[counterpart]; ok {
		if g, ok := c.Glyph(d); ok {
			return g
		}
	}
	return gs.glyphs.Glyph(d)
}

func (r *Registry) mustGet(s style.Style) *glyphSet {
	if gs, ok := r.sets[s]; ok {
		return gs
	}
	panic(fmt.Errorf("%w: %s", style.ErrUnknownStyle, s))
}

func (g *glyphSet) Style() style.Style {
	return g.style
}

func (g *glyphSet) Glyph(d style.Direction) string {
	return g.glyphs.Glyph(d)
}

func (g *glyphSet) Glyphs() style.Glyphs {
	return g.glyphs
}

func (g *glyphSet) Connection(s style.Style) (style.Connection, bool) {
	c, ok := g.connections[s]
	return c, ok
}
