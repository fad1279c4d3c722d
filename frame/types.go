// Package frame defines the Instruction, Circuit, and Frame types plus
// sentinel errors for winding cell circuits around a tessellation.
package frame

import (
	"errors"
	"fmt"

	"github.com/lattix/pqca/tessellation"
)

// ErrCircuitTooBig indicates a cell circuit whose slot references do not fit
// the tessellation's cell size.
var ErrCircuitTooBig = errors.New("frame: circuit does not fit the cell")

// Instruction is one opaque operation together with the ordered slot indices
// it acts on. Before winding the slots are cell-local ([0, cellSize));
// afterwards they are global site indices. The Op payload is carried through
// winding untouched and never inspected.
type Instruction struct {
	Op    any
	Slots []int
}

// Circuit is an ordered sequence of instructions.
type Circuit []Instruction

// Frame binds a tessellation to a cell-local circuit and holds the wound
// full-lattice circuit. Immutable once constructed; safe to share.
type Frame struct {
	tess  *tessellation.Tessellation
	cell  Circuit
	wound Circuit
}

// Tessellation returns the partition this frame is wound over.
func (f *Frame) Tessellation() *tessellation.Tessellation { return f.tess }

// CellCircuit returns a copy of the cell-local circuit.
func (f *Frame) CellCircuit() Circuit { return f.cell.clone() }

// Instructions returns a copy of the cached full-lattice circuit:
// NumCells × len(cell circuit) instructions, grouped by cell in partition
// order, cell-local order preserved within each group.
func (f *Frame) Instructions() Circuit { return f.wound.clone() }

// String renders a short diagnostic form.
func (f *Frame) String() string {
	return fmt.Sprintf("Frame(%d instructions on each cell of %s)", len(f.cell), f.tess)
}

// clone deep-copies a circuit's slot lists; Op payloads are shared.
func (c Circuit) clone() Circuit {
	out := make(Circuit, len(c))
	for i, ins := range c {
		slots := make([]int, len(ins.Slots))
		copy(slots, ins.Slots)
		out[i] = Instruction{Op: ins.Op, Slots: slots}
	}

	return out
}
