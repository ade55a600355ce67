package boxgrid

import (
	"github.com/kode4food/boxgrid/grid"
	"github.com/kode4food/boxgrid/style"
	"github.com/kode4food/boxgrid/style/config"

	gridImpl "github.com/kode4food/boxgrid/internal/grid"
	styleImpl "github.com/kode4food/boxgrid/internal/style"
)

// Styles is the process-wide Registry of built-in Styles
var Styles = mustRegistry(config.Standard)

// NewRegistry builds an immutable style Registry from a set of Options
func NewRegistry(o ...config.Option) (style.Registry, error) {
	return styleImpl.Make(o...)
}

// NewGrid instantiates a Grid of rows by columns Cells using the built-in
// Styles
func NewGrid(rows, columns int) (grid.Grid, error) {
	return gridImpl.Make(Styles, rows, columns)
}

// NewGridWith instantiates a Grid of rows by columns Cells whose Styles
// are drawn from the provided Registry
func NewGridWith(r style.Registry, rows, columns int) (grid.Grid, error) {
	return gridImpl.Make(r, rows, columns)
}

func mustRegistry(o ...config.Option) style.Registry {
	r, err := styleImpl.Make(o...)
	if err != nil {
		panic(err)
	}
	return r
}
