package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2024/direction"
	"github.com/katalvlaran/aoc2024/point"
)

// box is a minimal point.Bounds.
type box struct{ w, h int }

func (b box) Width() int  { return b.w }
func (b box) Height() int { return b.h }

// TestNew_Dimensions checks construction from several integer types.
func TestNew_Dimensions(t *testing.T) {
	p := point.New(1, 2, 3)
	assert.Equal(t, 3, p.Dim())
	assert.Equal(t, []int64{1, 2, 3}, p.Coords())

	q := point.XY(uint8(4), uint8(5))
	assert.Equal(t, int64(4), q.X())
	assert.Equal(t, int64(5), q.Y())

	assert.Panics(t, func() { point.New[int]() })
	assert.Panics(t, func() { point.New(1, 2, 3, 4, 5) })
}

// TestPoint_StructuralEquality verifies points work as map keys.
func TestPoint_StructuralEquality(t *testing.T) {
	seen := map[point.Point]bool{point.XY(1, 2): true}
	assert.True(t, seen[point.XY(int64(1), int64(2))])
	assert.False(t, seen[point.New(1, 2, 0)], "dimension is part of identity")
}

// TestPoint_Arithmetic covers Add, Sub, Scale and Manhattan.
func TestPoint_Arithmetic(t *testing.T) {
	a, b := point.XY(5, 4), point.XY(3, 7)
	assert.Equal(t, point.XY(8, 11), a.Add(b))
	assert.Equal(t, point.XY(2, -3), a.Sub(b))
	assert.Equal(t, point.XY(10, 8), a.Scale(2))
	assert.Equal(t, int64(5), a.Manhattan(b))
	assert.Equal(t, "(5, 4)", a.String())

	assert.Panics(t, func() { a.Add(point.New(1, 1, 1)) })
}

// TestMoveInGrid_Edges verifies moves that would leave the grid are refused.
func TestMoveInGrid_Edges(t *testing.T) {
	b := box{w: 3, h: 2}
	origin := point.XY(0, 0)

	_, ok := origin.MoveInGrid(direction.Up, b)
	assert.False(t, ok)
	_, ok = origin.MoveInGrid(direction.Left, b)
	assert.False(t, ok)

	next, ok := origin.MoveInGrid(direction.Right, b)
	assert.True(t, ok)
	assert.Equal(t, point.XY(1, 0), next)

	corner := point.XY(2, 1)
	same, ok := corner.MoveInGrid(direction.Down, b)
	assert.False(t, ok)
	assert.Equal(t, corner, same, "a refused move leaves the point unchanged")
}

// TestMoveInGridDiag covers diagonal steps at the border.
func TestMoveInGridDiag(t *testing.T) {
	b := box{w: 2, h: 2}
	next, ok := point.XY(0, 0).MoveInGridDiag(direction.SouthEast, b)
	assert.True(t, ok)
	assert.Equal(t, point.XY(1, 1), next)

	_, ok = point.XY(1, 1).MoveInGridDiag(direction.NorthEast, b)
	assert.False(t, ok)
}
