// Package tessellation partitions an n-dimensional lattice of sites into
// equal-sized, non-overlapping cells addressed by linear site indices.
//
// What:
//
//   - Tessellation wraps a validated list of cells (lists of site indices).
//   - New builds one from explicit cells; OneDimensional and NDimensional
//     derive one from lattice and cell extents.
//   - ShiftedBy / UpdateNames rename every site, producing a new Tessellation.
//
// Why:
//
//   - Partitioned cellular automata apply one local circuit to every cell;
//     the partition fixes which global sites each copy acts on.
//   - Alternating between a tessellation and a shifted twin is the usual way
//     to let information propagate across cell boundaries.
//
// Site numbering:
//
//	A coordinate vector v on a lattice of extents shape maps to the linear
//	index Σ v[i]·Π_{j>i} shape[j] — lexicographic order, last dimension
//	fastest. NDimensional enumerates cells with dimension 0 as the
//	slowest-varying loop, so cell order and in-cell order are deterministic
//	and reproducible across builds.
//
// Invariants (checked at construction, in this order):
//
//   - at least one cell                    → ErrNoCells
//   - the first cell is non-empty          → ErrEmptyCell
//   - sites cover [0,size) exactly once    → ErrUnevenCoverage
//   - all cells share one cardinality      → ErrIrregularCellSize
//
// A Tessellation is immutable once built; renaming returns a fresh value, so
// frames and automatons may hold shared references safely.
//
// Complexity:
//
//   - New:           O(size)
//   - NDimensional:  O(size·d)   (d = number of dimensions)
//   - UpdateNames:   O(size) plus revalidation
//
// Errors:
//
//   - ErrNoCells, ErrEmptyCell, ErrUnevenCoverage, ErrIrregularCellSize:
//     structural violations during construction.
//   - ErrIrregularDimensions: NDimensional extents that do not divide
//     component-wise.
package tessellation
