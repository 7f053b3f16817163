// Package point provides a small N-dimensional integer coordinate.
//
// What:
//
//   - Point holds up to MaxDim signed coordinates. Its dimension is fixed
//     when it is built and never changes.
//   - Points are comparable values, so they work directly as map keys and
//     with ==.
//   - Add, Sub and Scale are component-wise; mixing dimensions panics.
//   - MoveInGrid and MoveInGridDiag step a 2-D point one cell and report
//     false instead of leaving the grid.
//
// Complexity: every operation is O(N) with N ≤ MaxDim.
package point

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// MaxDim is the largest supported dimension.
const MaxDim = 4

// Point is an ordered tuple of signed integers.
// The zero value is a 0-dimensional point.
type Point struct {
	coords [MaxDim]int64 // unused slots stay zero so == is structural
	dim    int
}

// New builds a point from its coordinates.
// It panics if no coordinates or more than MaxDim are given.
func New[T constraints.Integer](coords ...T) Point {
	if len(coords) == 0 || len(coords) > MaxDim {
		panic(fmt.Sprintf("point: dimension %d out of range 1..%d", len(coords), MaxDim))
	}
	var p Point
	p.dim = len(coords)
	for i, c := range coords {
		p.coords[i] = int64(c)
	}

	return p
}

// XY builds a 2-D point.
func XY[T constraints.Integer](x, y T) Point {
	return New(x, y)
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return p.dim }

// At returns coordinate i. It panics when i is outside the dimension.
func (p Point) At(i int) int64 {
	if i < 0 || i >= p.dim {
		panic(fmt.Sprintf("point: index %d out of range for %d-d point", i, p.dim))
	}
	return p.coords[i]
}

// X returns the first coordinate.
func (p Point) X() int64 { return p.At(0) }

// Y returns the second coordinate.
func (p Point) Y() int64 { return p.At(1) }

// Z returns the third coordinate.
func (p Point) Z() int64 { return p.At(2) }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []int64 {
	out := make([]int64, p.dim)
	copy(out, p.coords[:p.dim])
	return out
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	p.mustMatch(q)
	for i := 0; i < p.dim; i++ {
		p.coords[i] += q.coords[i]
	}
	return p
}

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point {
	p.mustMatch(q)
	for i := 0; i < p.dim; i++ {
		p.coords[i] -= q.coords[i]
	}
	return p
}

// Scale multiplies every coordinate by k.
func (p Point) Scale(k int64) Point {
	for i := 0; i < p.dim; i++ {
		p.coords[i] *= k
	}
	return p
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int64 {
	d := p.Sub(q)
	var sum int64
	for i := 0; i < d.dim; i++ {
		sum += abs(d.coords[i])
	}
	return sum
}

// String renders the point as "(x, y, ...)".
func (p Point) String() string {
	parts := make([]string, p.dim)
	for i := 0; i < p.dim; i++ {
		parts[i] = fmt.Sprint(p.coords[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p Point) mustMatch(q Point) {
	if p.dim != q.dim {
		panic(fmt.Sprintf("point: dimension mismatch %d vs %d", p.dim, q.dim))
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
