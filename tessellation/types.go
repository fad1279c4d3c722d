// Package tessellation defines the Tessellation type and sentinel errors
// for lattice partition construction and renaming.
package tessellation

import (
	"errors"
	"fmt"
)

// Sentinel errors for tessellation construction.
var (
	// ErrNoCells indicates an empty cell list.
	ErrNoCells = errors.New("tessellation: there must be at least one cell")
	// ErrEmptyCell indicates a cell with no sites.
	ErrEmptyCell = errors.New("tessellation: cells cannot be empty")
	// ErrUnevenCoverage indicates a site index appearing zero or multiple times
	// across the partition, or a union that is not exactly [0,size).
	ErrUnevenCoverage = errors.New("tessellation: each site must appear exactly once")
	// ErrIrregularCellSize indicates cells of differing cardinality.
	ErrIrregularCellSize = errors.New("tessellation: all cells must be the same size")
	// ErrIrregularDimensions indicates lattice and cell extents that disagree in
	// arity or do not divide component-wise.
	ErrIrregularDimensions = errors.New("tessellation: cell extents must divide lattice extents component-wise")
)

// Tessellation is a validated partition of site indices [0,size) into
// equal-size cells. It is immutable once built; renaming operations return a
// new Tessellation and never touch the receiver.
type Tessellation struct {
	cells [][]int
	size  int
}

// Size returns the total number of sites across all cells.
func (t *Tessellation) Size() int { return t.size }

// NumCells returns the number of cells in the partition.
func (t *Tessellation) NumCells() int { return len(t.cells) }

// CellSize returns the shared cardinality of every cell.
func (t *Tessellation) CellSize() int { return len(t.cells[0]) }

// Cell returns a copy of the i-th cell's site indices, in stored order.
func (t *Tessellation) Cell(i int) []int {
	out := make([]int, len(t.cells[i]))
	copy(out, t.cells[i])

	return out
}

// Cells returns a deep copy of the partition, cell order and in-cell order
// preserved.
func (t *Tessellation) Cells() [][]int {
	out := make([][]int, len(t.cells))
	for i := range t.cells {
		out[i] = t.Cell(i)
	}

	return out
}

// String renders a short diagnostic form: site count, cell count, first cell.
func (t *Tessellation) String() string {
	return fmt.Sprintf("Tessellation(%d sites as %d cells, first cell: %v)",
		t.size, len(t.cells), t.cells[0])
}
