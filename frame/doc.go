// Package frame winds a cell-local instruction sequence around every cell of
// a tessellation, producing the full-lattice sequence one automaton step
// applies.
//
// What:
//
//   - Instruction pairs an opaque operation payload with the ordered slot
//     indices it acts on. The payload is never inspected here; only the
//     slots are rewritten.
//   - Circuit is an ordered instruction sequence.
//   - Frame binds one Tessellation to one cell-local Circuit and caches the
//     wound full-lattice Circuit, computed once at construction.
//
// Winding:
//
//	Cells are visited in partition order; within each cell the cell-local
//	instructions keep their given order; local slot q maps to the cell's
//	q-th site. The output therefore has NumCells × len(cell circuit)
//	instructions in a deterministic, reproducible order — the order a
//	downstream evaluator executes.
//
// Why:
//
//   - Applying the same local update to every cell is what makes a
//     partitioned automaton partitioned; winding is the expansion from
//     "circuit on one cell" to "circuit on the whole lattice".
//
// Complexity: O(NumCells × len(circuit) × slots per instruction).
//
// Errors:
//
//   - ErrCircuitTooBig: the cell circuit references more distinct slots than
//     the tessellation's cell size, or a slot outside [0, cellSize).
package frame
