package frame

import (
	"fmt"

	"github.com/lattix/pqca/tessellation"
)

// New binds cell, a circuit over local slots [0, cellSize), to every cell of
// tess and caches the wound full-lattice circuit.
// Returns ErrCircuitTooBig if the circuit references more distinct slots than
// the cell holds, or any slot outside [0, cellSize).
// Complexity: O(NumCells × len(cell) × slots per instruction).
func New(tess *tessellation.Tessellation, cell Circuit) (*Frame, error) {
	if err := checkFits(cell, tess.CellSize()); err != nil {
		return nil, err
	}

	return &Frame{
		tess:  tess,
		cell:  cell.clone(),
		wound: wind(tess, cell),
	}, nil
}

// checkFits validates every slot reference against the cell size.
func checkFits(cell Circuit, cellSize int) error {
	distinct := make(map[int]struct{})
	for _, ins := range cell {
		for _, slot := range ins.Slots {
			if slot < 0 || slot >= cellSize {
				return fmt.Errorf("%w: slot %d outside cell of size %d", ErrCircuitTooBig, slot, cellSize)
			}
			distinct[slot] = struct{}{}
		}
	}
	if len(distinct) > cellSize {
		return fmt.Errorf("%w: %d slots referenced, cell holds %d", ErrCircuitTooBig, len(distinct), cellSize)
	}

	return nil
}

// wind remaps the cell circuit onto every cell: outer loop over cells in
// partition order, inner loop over instructions in their given order, local
// slot q replaced by the cell's q-th site. Payloads are carried unchanged.
func wind(tess *tessellation.Tessellation, cell Circuit) Circuit {
	out := make(Circuit, 0, tess.NumCells()*len(cell))
	for c := 0; c < tess.NumCells(); c++ {
		sites := tess.Cell(c)
		for _, ins := range cell {
			slots := make([]int, len(ins.Slots))
			for i, slot := range ins.Slots {
				slots[i] = sites[slot]
			}
			out = append(out, Instruction{Op: ins.Op, Slots: slots})
		}
	}

	return out
}
