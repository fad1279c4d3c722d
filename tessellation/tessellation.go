package tessellation

import (
	"fmt"

	"github.com/lattix/pqca/vector"
)

// New constructs a Tessellation from an explicit list of cells and validates
// the partition invariants, failing fast on the first violation:
// ErrNoCells, ErrEmptyCell, ErrUnevenCoverage, ErrIrregularCellSize.
// The input is deep-copied to keep the Tessellation immutable.
// Complexity: O(size) time and memory.
func New(cells [][]int) (*Tessellation, error) {
	if len(cells) == 0 {
		return nil, ErrNoCells
	}
	if len(cells[0]) == 0 {
		return nil, ErrEmptyCell
	}

	size := 0
	for _, cell := range cells {
		size += len(cell)
	}

	// Every index in [0,size) must appear exactly once across all cells.
	seen := make([]int, size)
	for _, cell := range cells {
		for _, site := range cell {
			if site < 0 || site >= size {
				return nil, fmt.Errorf("%w: site %d outside [0,%d)", ErrUnevenCoverage, site, size)
			}
			seen[site]++
		}
	}
	for site, count := range seen {
		if count != 1 {
			return nil, fmt.Errorf("%w: site %d appears %d times", ErrUnevenCoverage, site, count)
		}
	}

	cellSize := len(cells[0])
	for _, cell := range cells {
		if len(cell) != cellSize {
			return nil, fmt.Errorf("%w: %d vs %d", ErrIrregularCellSize, len(cell), cellSize)
		}
	}

	copied := make([][]int, len(cells))
	for i, cell := range cells {
		copied[i] = make([]int, len(cell))
		copy(copied[i], cell)
	}

	return &Tessellation{cells: copied, size: size}, nil
}

// OneDimensional partitions a line of sites sites into consecutive runs of
// length cellSize. Equivalent to NDimensional([]int{sites}, []int{cellSize}).
func OneDimensional(sites, cellSize int) (*Tessellation, error) {
	return NDimensional([]int{sites}, []int{cellSize})
}

// NDimensional partitions an n-dimensional lattice into n-dimensional cuboid
// cells. shape[i] is the lattice extent along dimension i, cellShape[i] the
// cell extent along the same dimension; cellShape[i] must divide shape[i]
// exactly, else ErrIrregularDimensions.
//
// Cells are enumerated focal point by focal point (the Cartesian product of
// range(0, shape[i], cellShape[i]), dimension 0 slowest-varying), and within
// each cell sites follow the offset product of range(0, cellShape[i]) in the
// same order. Coordinate vectors become linear indices under the
// lexicographic rule, so the result is deterministic across builds.
// Complexity: O(size·d) time and memory.
func NDimensional(shape, cellShape []int) (*Tessellation, error) {
	if len(shape) != len(cellShape) {
		return nil, fmt.Errorf("%w: %v and %v", ErrIrregularDimensions, shape, cellShape)
	}
	for i, extent := range shape {
		if cellShape[i] <= 0 || extent%cellShape[i] != 0 {
			return nil, fmt.Errorf("%w: %v and %v", ErrIrregularDimensions, shape, cellShape)
		}
	}

	focals := product(shape, cellShape)
	offsets := product(cellShape, ones(len(cellShape)))

	cells := make([][]int, 0, len(focals))
	for _, focal := range focals {
		cell := make([]int, 0, len(offsets))
		for _, offset := range offsets {
			site, err := focal.Add(offset)
			if err != nil {
				return nil, err
			}
			cell = append(cell, linearIndex(site, shape))
		}
		cells = append(cells, cell)
	}

	return New(cells)
}

// ShiftedBy returns a new Tessellation with every site index replaced by
// (index+amount) mod size. amount may be negative or exceed the size.
func (t *Tessellation) ShiftedBy(amount int) (*Tessellation, error) {
	return t.UpdateNames(func(site int) int { return site + amount }, true)
}

// UpdateNames returns a new Tessellation with rename applied to every site
// index. When wrap is true, each result is reduced into [0,size) by true
// modulo, so arbitrarily negative or oversized results are valid. When wrap
// is false, the raw results must themselves satisfy the partition invariants;
// otherwise the construction errors of New are returned.
func (t *Tessellation) UpdateNames(rename func(int) int, wrap bool) (*Tessellation, error) {
	renamed := make([][]int, len(t.cells))
	for i, cell := range t.cells {
		renamed[i] = make([]int, len(cell))
		for j, site := range cell {
			name := rename(site)
			if wrap {
				name = ((name % t.size) + t.size) % t.size
			}
			renamed[i][j] = name
		}
	}

	return New(renamed)
}

// linearIndex maps a coordinate vector to its lexicographic linear index:
// Σ v[i]·Π_{j>i} shape[j], last dimension fastest. Exact integer arithmetic.
func linearIndex(v vector.Vector, shape []int) int {
	idx := 0
	for i := 0; i < v.Len(); i++ {
		weight := 1
		for _, extent := range shape[i+1:] {
			weight *= extent
		}
		idx += v.At(i) * weight
	}

	return idx
}

// coordinate inverts linearIndex for indices in [0, Π shape[i]).
func coordinate(idx int, shape []int) vector.Vector {
	v := make(vector.Vector, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		v[i] = idx % shape[i]
		idx /= shape[i]
	}

	return v
}

// product enumerates the Cartesian product of range(0, stop[i], step[i]) for
// each dimension, dimension 0 as the outermost (slowest-varying) loop.
func product(stop, step []int) []vector.Vector {
	dims := len(stop)
	counts := make([]int, dims)
	total := 1
	for i := range stop {
		counts[i] = (stop[i] + step[i] - 1) / step[i]
		total *= counts[i]
	}
	if total <= 0 {
		return nil
	}

	out := make([]vector.Vector, 0, total)
	odometer := make([]int, dims)
	for {
		v := make(vector.Vector, dims)
		for i := range v {
			v[i] = odometer[i] * step[i]
		}
		out = append(out, v)

		i := dims - 1
		for ; i >= 0; i-- {
			odometer[i]++
			if odometer[i] < counts[i] {
				break
			}
			odometer[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// ones returns a slice of n ones, the unit step for offset enumeration.
func ones(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
