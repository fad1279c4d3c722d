// Package pqca builds and drives partitioned cellular automata: fixed
// lattices of sites updated by winding one cell-local circuit around every
// cell of a partition, then handing the composed circuit to an evaluator.
//
// 🚀 What is pqca?
//
//	A small, deterministic library that brings together:
//		• Coordinate vectors: exact integer lattice arithmetic
//		• Tessellations: validated equal-cell partitions of n-dimensional lattices
//		• Frames: cell circuits wound into full-lattice instruction sequences
//		• Automatons: the tick/iterate loop over an external evaluator
//		• Backends: a classical reference evaluator and seeded random states
//
// ✨ Why choose pqca?
//
//   - Exact indexing – lexicographic linearization, pure integer arithmetic,
//     no off-by-one surprises across dimensions
//   - Fail-fast validation – every malformed partition or circuit is refused
//     at construction with a distinct sentinel error
//   - Reproducible – identical inputs always wind to identical instruction
//     sequences, tick after tick, build after build
//   - Immutable values – tessellations and frames are safe to share between
//     automatons
//
// Everything is organized under five subpackages:
//
//	vector/       — fixed-arity integer coordinate tuples
//	tessellation/ — lattice partition construction, shifting, renaming
//	frame/        — instruction winding over a tessellation
//	automaton/    — state ownership and the tick loop
//	backend/      — reference evaluators and seeded initial states
//
// Quick ASCII example, a 4-site ring under paired cells:
//
//	[0 1][2 3]        base partition
//	 1][2 3][0        its shifted twin
//
//	winding one swap over both frames walks a set bit two sites per tick.
//
// The evaluator is deliberately external: anything that can execute an
// instruction sequence over a declared number of sites — a quantum
// simulator, hardware, or the bundled classical interpreter — can drive the
// automaton.
//
//	go get github.com/lattix/pqca
package pqca
