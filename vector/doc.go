// Package vector provides the fixed-arity integer coordinate tuple used to
// address sites on an n-dimensional lattice.
//
// What:
//
//   - Vector wraps an ordered list of integer components.
//   - Add / Sub combine two vectors component-wise.
//   - Extend appends one component, producing a longer vector.
//   - Equal compares component-wise.
//
// Why:
//
//   - Lattice construction walks cells as focal-point + offset sums.
//   - A dedicated value type keeps dimension checks in one place.
//
// Semantics:
//
//   - Vectors are pure values: every operation allocates a fresh result and
//     no operation mutates its receiver or arguments.
//   - Add and Sub require both operands to have identical length.
//
// Complexity: all operations are O(d) in the vector dimension d.
//
// Errors:
//
//   - ErrDimensionMismatch: Add/Sub over vectors of different lengths.
package vector
