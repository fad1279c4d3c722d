package tessellation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lattix/pqca/vector"
)

// TestLinearIndex pins the lexicographic rule on hand-computed points.
func TestLinearIndex(t *testing.T) {
	shape := []int{3, 4, 5}
	cases := []struct {
		v    vector.Vector
		want int
	}{
		{vector.New(0, 0, 0), 0},
		{vector.New(0, 0, 1), 1},
		{vector.New(0, 1, 0), 5},
		{vector.New(1, 0, 0), 20},
		{vector.New(2, 3, 4), 59},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, linearIndex(tc.v, shape), "linearIndex(%v)", tc.v)
	}
}

// TestLinearIndex_RoundTrip exhausts every lattice point of several shapes and
// checks that coordinate inverts linearIndex exactly.
func TestLinearIndex_RoundTrip(t *testing.T) {
	shapes := [][]int{
		{7},
		{2, 3},
		{3, 4, 5},
		{2, 2, 2, 2},
	}
	for _, shape := range shapes {
		total := 1
		for _, extent := range shape {
			total *= extent
		}
		for idx := 0; idx < total; idx++ {
			v := coordinate(idx, shape)
			assert.Equal(t, idx, linearIndex(v, shape), "shape %v index %d", shape, idx)
		}
	}
}

// TestProduct_Order pins Cartesian enumeration order: dimension 0 outermost.
func TestProduct_Order(t *testing.T) {
	got := product([]int{2, 3}, []int{1, 1})

	want := []vector.Vector{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	assert.Equal(t, want, got)
}

// TestProduct_Stepped verifies strided enumeration, as used for focal points.
func TestProduct_Stepped(t *testing.T) {
	got := product([]int{4, 6}, []int{2, 3})

	want := []vector.Vector{
		{0, 0}, {0, 3},
		{2, 0}, {2, 3},
	}
	assert.Equal(t, want, got)
}

// TestProduct_ZeroDimensions checks the degenerate empty-shape case: one
// empty vector, mirroring an empty Cartesian product.
func TestProduct_ZeroDimensions(t *testing.T) {
	got := product(nil, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Len())
}
