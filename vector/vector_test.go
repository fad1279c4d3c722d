package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattix/pqca/vector"
)

// TestNew_Copies verifies that New captures the components by value.
func TestNew_Copies(t *testing.T) {
	src := []int{1, 2, 3}
	v := vector.New(src...)
	src[0] = 99

	assert.True(t, v.Equal(vector.New(1, 2, 3)), "mutating the source slice must not affect the vector")
}

// TestExtend verifies length growth and that the receiver is untouched.
func TestExtend(t *testing.T) {
	v := vector.New(4, 5)
	w := v.Extend(6)

	assert.Equal(t, 3, w.Len(), "extended vector length")
	assert.Equal(t, 6, w.At(2), "appended component")
	assert.Equal(t, 2, v.Len(), "original vector must keep its length")
}

// TestAddSub exercises component-wise arithmetic.
func TestAddSub(t *testing.T) {
	a := vector.New(1, 2, 3)
	b := vector.New(10, 20, 30)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(vector.New(11, 22, 33)), "sum components")

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.True(t, diff.Equal(vector.New(9, 18, 27)), "difference components")

	// Operands must remain untouched.
	assert.True(t, a.Equal(vector.New(1, 2, 3)), "a unchanged")
	assert.True(t, b.Equal(vector.New(10, 20, 30)), "b unchanged")
}

// TestAddSub_DimensionMismatch verifies ErrDimensionMismatch on unequal lengths.
func TestAddSub_DimensionMismatch(t *testing.T) {
	a := vector.New(1, 2)
	b := vector.New(1, 2, 3)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "Add over mismatched arity must error")

	_, err = a.Sub(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "Sub over mismatched arity must error")
}

// TestEqual covers structural equality, including the length guard.
func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b vector.Vector
		want bool
	}{
		{"Identical", vector.New(1, 2), vector.New(1, 2), true},
		{"DifferentComponent", vector.New(1, 2), vector.New(1, 3), false},
		{"DifferentLength", vector.New(1, 2), vector.New(1, 2, 0), false},
		{"BothEmpty", vector.New(), vector.New(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
		})
	}
}

// TestString checks the diagnostic rendering.
func TestString(t *testing.T) {
	assert.Equal(t, "Vector[0 7 -2]", vector.New(0, 7, -2).String())
	assert.Equal(t, "Vector[]", vector.New().String())
}
