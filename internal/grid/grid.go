package grid

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/kode4food/boxgrid/grid"
	"github.com/kode4food/boxgrid/style"
)

type (
	// Grid is the internal implementation of a grid.Grid
	Grid struct {
		id       uuid.UUID
		registry style.Registry
		rows     []*row
		columns  int
		mu       sync.RWMutex
	}

	// row never changes length once built, so it needs no lock of its own
	row struct {
		index int
		cells []*cell
	}
)

// Make instantiates a Grid of rows by columns default Cells, validating
// styles against the provided Registry
func Make(r style.Registry, rows, columns int) (grid.Grid, error) {
	if rows < 0 || columns < 0 {
		return nil, fmt.Errorf("%w: %d rows, %d columns",
			grid.ErrNegativeSize, rows, columns,
		)
	}
	g := &Grid{
		id:       uuid.New(),
		registry: r,
		rows:     make([]*row, 0, rows),
		columns:  columns,
	}
	for i := 0; i < rows; i++ {
		g.addRow(columns)
	}
	slog.Debug("grid created", "grid", g.id, "rows", rows, "columns", columns)
	return g, nil
}

func (g *Grid) ID() uuid.UUID {
	return g.id
}

func (g *Grid) Registry() style.Registry {
	return g.registry
}

func (g *Grid) ColumnSize() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.columns
}

func (g *Grid) SetColumnSize(columns int) error {
	if columns < 0 {
		return fmt.Errorf("%w: %d columns", grid.ErrNegativeSize, columns)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.columns = columns
	return nil
}

func (g *Grid) Rows() []grid.Row {
	g.mu.RLock()
	defer g.mu.RUnlock()
	res := make([]grid.Row, len(g.rows))
	for i, r := range g.rows {
		res[i] = r
	}
	return res
}

func (g *Grid) Row(idx int) (grid.Row, bool) {
	if r, ok := g.rowAt(idx); ok {
		return r, true
	}
	return nil, false
}

func (g *Grid) AppendRow(columns int) (grid.Row, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if columns != g.columns {
		slog.Debug("row rejected",
			"grid", g.id, "columns", columns, "expected", g.columns,
		)
		return nil, fmt.Errorf("%w: need %d, got %d",
			grid.ErrColumnMismatch, g.columns, columns,
		)
	}
	r := g.addRow(columns)
	slog.Debug("row appended", "grid", g.id, "row", r.index, "columns", columns)
	return r, nil
}

func (g *Grid) Select(c grid.Coord, fn func(grid.Accessor)) bool {
	cl, ok := g.cellAt(c)
	if !ok {
		return false
	}
	cl.sel.Lock()
	defer cl.sel.Unlock()
	g.run(cl, fn)
	return true
}

func (g *Grid) TrySelect(c grid.Coord, fn func(grid.Accessor)) error {
	cl, ok := g.cellAt(c)
	if !ok {
		return fmt.Errorf("%w: %s", grid.ErrOutOfBounds, c)
	}
	if !cl.sel.TryLock() {
		slog.Debug("cell busy", "grid", g.id, "coord", c)
		return fmt.Errorf("%w: %s", grid.ErrCellBusy, c)
	}
	defer cl.sel.Unlock()
	g.run(cl, fn)
	return nil
}

// run hands fn an Accessor that is released on every exit path, before
// the caller gives up the Cell's selection lock
func (g *Grid) run(c *cell, fn func(grid.Accessor)) {
	a := makeAccessor(g.registry, c)
	defer a.release()
	fn(a)
}

// addRow must be called with the write lock held, or before the Grid has
// been published
func (g *Grid) addRow(columns int) *row {
	idx := len(g.rows)
	r := &row{
		index: idx,
		cells: make([]*cell, columns),
	}
	def := g.registry.Default()
	for col := 0; col < columns; col++ {
		r.cells[col] = makeCell(grid.Coord{Row: idx, Column: col}, def)
	}
	g.rows = append(g.rows, r)
	return r
}

func (g *Grid) rowAt(idx int) (*row, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.rows) {
		return nil, false
	}
	return g.rows[idx], true
}

func (g *Grid) cellAt(c grid.Coord) (*cell, bool) {
	r, ok := g.rowAt(c.Row)
	if !ok || c.Column < 0 || c.Column >= len(r.cells) {
		return nil, false
	}
	return r.cells[c.Column], true
}

func (r *row) Index() int {
	return r.index
}

func (r *row) Len() int {
	return len(r.cells)
}

func (r *row) Cell(col int) (grid.Cell, bool) {
	if col < 0 || col >= len(r.cells) {
		return grid.Cell{}, false
	}
	return r.cells[col].snapshot(), true
}

func (r *row) Cells() []grid.Cell {
	res := make([]grid.Cell, len(r.cells))
	for i, c := range r.cells {
		res[i] = c.snapshot()
	}
	return res
}
