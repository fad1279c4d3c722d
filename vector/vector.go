package vector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDimensionMismatch indicates component-wise arithmetic over vectors of
// unequal length.
var ErrDimensionMismatch = errors.New("vector: operands must have the same dimension")

// Vector is an ordered, fixed-length tuple of integer lattice coordinates.
// It is a pure value: methods never mutate the receiver.
type Vector []int

// New builds a Vector from the given components, copying them.
func New(entries ...int) Vector {
	v := make(Vector, len(entries))
	copy(v, entries)

	return v
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v) }

// At returns the component at position i.
func (v Vector) At(i int) int { return v[i] }

// Extend returns a new Vector of length len(v)+1 with next appended.
func (v Vector) Extend(next int) Vector {
	out := make(Vector, len(v)+1)
	copy(out, v)
	out[len(v)] = next

	return out
}

// Add returns the component-wise sum of v and o.
// Returns ErrDimensionMismatch if the lengths differ.
func (v Vector) Add(o Vector) (Vector, error) {
	return v.combine(o, func(a, b int) int { return a + b })
}

// Sub returns the component-wise difference v−o.
// Returns ErrDimensionMismatch if the lengths differ.
func (v Vector) Sub(o Vector) (Vector, error) {
	return v.combine(o, func(a, b int) int { return a - b })
}

// combine applies op component-wise, enforcing equal dimensions.
func (v Vector) combine(o Vector, op func(a, b int) int) (Vector, error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v), len(o))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = op(v[i], o[i])
	}

	return out, nil
}

// Equal reports whether v and o have identical length and components.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "Vector[a b c]".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprintf("%d", e)
	}

	return "Vector[" + strings.Join(parts, " ") + "]"
}
