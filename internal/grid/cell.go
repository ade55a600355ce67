package grid

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/kode4food/boxgrid/grid"
	"github.com/kode4food/boxgrid/style"
)

type (
	// cell holds two locks. sel is held for the lifetime of an Accessor,
	// while mu only guards the fields during a read or a single edit
	cell struct {
		coord      grid.Coord
		content    string
		hasContent bool
		length     int
		width      int
		style      style.Style
		sel        sync.Mutex
		mu         sync.RWMutex
	}

	accessor struct {
		registry style.Registry
		cell     *cell
		released atomic.Bool
	}
)

func makeCell(c grid.Coord, s style.Style) *cell {
	return &cell{
		coord: c,
		style: s,
	}
}

func (c *cell) snapshot() grid.Cell {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return grid.Cell{
		Coord:        c.coord,
		Content:      c.content,
		HasContent:   c.hasContent,
		ContentLen:   c.length,
		ContentWidth: c.width,
		Style:        c.style,
	}
}

func makeAccessor(r style.Registry, c *cell) *accessor {
	return &accessor{
		registry: r,
		cell:     c,
	}
}

func (a *accessor) Coord() grid.Coord {
	return a.cell.coord
}

func (a *accessor) Cell() grid.Cell {
	a.checkReleased()
	return a.cell.snapshot()
}

func (a *accessor) EditContent(content string) {
	a.checkReleased()
	c := a.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = content
	c.hasContent = true
	c.length = utf8.RuneCountInString(content)
	c.width = runewidth.StringWidth(content)
}

func (a *accessor) ClearContent() {
	a.checkReleased()
	c := a.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = ""
	c.hasContent = false
	c.length = 0
	c.width = 0
}

func (a *accessor) EditStyle(s style.Style) {
	a.checkReleased()
	if !a.registry.Declared(s) {
		panic(fmt.Errorf("%w: %s", style.ErrUnknownStyle, s))
	}
	c := a.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	c.style = s
}

func (a *accessor) release() {
	a.released.Store(true)
}

func (a *accessor) checkReleased() {
	if a.released.Load() {
		panic(fmt.Errorf("%w: %s", grid.ErrAccessorReleased, a.cell.coord))
	}
}
