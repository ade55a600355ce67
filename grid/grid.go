package grid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kode4food/boxgrid/style"
)

type (
	// Grid is a rectangular collection of Cells, organized into Rows.
	// Rows are only ever appended, and a Cell is mutated exclusively
	// through an Accessor obtained by selecting it
	Grid interface {
		// ID uniquely identifies this Grid
		ID() uuid.UUID

		// Registry returns the style Registry this Grid validates against
		Registry() style.Registry

		// ColumnSize returns the declared column count for new Rows
		ColumnSize() int

		// SetColumnSize changes the declared column count. Existing Rows
		// keep their length
		SetColumnSize(int) error

		// Rows returns the Rows of this Grid in index order
		Rows() []Row

		// Row returns the Row at the specified index, if it exists
		Row(int) (Row, bool)

		// AppendRow adds a Row of default Cells. The column count must
		// equal ColumnSize
		AppendRow(columns int) (Row, error)

		// Select calls fn with an exclusive Accessor for the Cell at the
		// Coord, waiting for any other Accessor of that Cell to be
		// released. It returns false if the Coord is out of bounds
		Select(Coord, func(Accessor)) bool

		// TrySelect is like Select, but fails immediately if the Cell is
		// already selected
		TrySelect(Coord, func(Accessor)) error
	}

	// Row is a fixed-length sequence of Cells sharing a row index
	Row interface {
		// Index returns the position of this Row within its Grid
		Index() int

		// Len returns the number of Cells in this Row
		Len() int

		// Cell returns a snapshot of the Cell at the column index
		Cell(int) (Cell, bool)

		// Cells returns a snapshot of every Cell in this Row
		Cells() []Cell
	}

	// Accessor mutates a single selected Cell. It is only valid within
	// the function passed to Select or TrySelect
	Accessor interface {
		Coord() Coord
		Cell() Cell
		EditContent(string)
		ClearContent()
		EditStyle(style.Style)
	}

	// Coord addresses a Cell by row and column index
	Coord struct {
		Row    int
		Column int
	}

	// Cell is a point-in-time copy of a grid Cell. ContentLen counts
	// characters, while ContentWidth counts terminal display columns
	Cell struct {
		Coord        Coord
		Content      string
		HasContent   bool
		ContentLen   int
		ContentWidth int
		Style        style.Style
	}
)

// Error messages
var (
	ErrNegativeSize     = errors.New("grid dimensions must not be negative")
	ErrColumnMismatch   = errors.New("row length does not match grid")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrCellBusy         = errors.New("cell is already selected")
	ErrAccessorReleased = errors.New("cell accessor used after release")
)

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Column)
}
