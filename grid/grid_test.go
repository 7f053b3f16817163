package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/point"
)

//----------------------------------------------------------------------------//
// Construction and access
//----------------------------------------------------------------------------//

func newGrid(t *testing.T, rows [][]uint8) *grid.Grid[uint8] {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

// TestNew_NonRectangular verifies ragged rows are rejected up front.
func TestNew_NonRectangular(t *testing.T) {
	_, err := grid.New([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestNew_DeepCopy verifies the grid does not alias its input.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]uint8{{1, 2}, {3, 4}}
	g := newGrid(t, rows)
	rows[0][0] = 9

	v, ok := g.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, uint8(1), v)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 4, g.Area())
}

// TestGet_OutOfBounds checks reads outside the grid are absent, never panics.
func TestGet_OutOfBounds(t *testing.T) {
	g := newGrid(t, [][]uint8{{1, 2, 3}, {4, 5, 6}})
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}} {
		_, ok := g.Get(xy[0], xy[1])
		assert.False(t, ok, "Get(%d,%d)", xy[0], xy[1])
		_, ok = g.GetPoint(point.XY(xy[0], xy[1]))
		assert.False(t, ok, "GetPoint(%d,%d)", xy[0], xy[1])
	}
	_, ok := g.GetPoint(point.New(0, 0, 0))
	assert.False(t, ok, "non-2-D points are never inside")
}

// TestSet_Panics checks out-of-bounds writes are precondition violations.
func TestSet_Panics(t *testing.T) {
	g := newGrid(t, [][]uint8{{1, 2}, {3, 4}})
	assert.Panics(t, func() { g.Set(2, 0, 7) })
	assert.Panics(t, func() { g.SetPoint(point.XY(0, -1), 7) })

	g.SetPoint(point.XY(0, 0), 7)
	v, _ := g.Get(0, 0)
	assert.Equal(t, uint8(7), v, "origin is writable")
}

// TestSetRowCol replaces a middle row and column.
func TestSetRowCol(t *testing.T) {
	g := newGrid(t, [][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	g.SetCol(1, []uint8{13, 11, 12})
	assert.Equal(t, [][]uint8{
		{1, 13, 3},
		{4, 11, 6},
		{7, 12, 9},
	}, g.Rows())

	g.SetRow(1, []uint8{20, 21, 22})
	assert.Equal(t, [][]uint8{
		{1, 13, 3},
		{20, 21, 22},
		{7, 12, 9},
	}, g.Rows())
	assert.Equal(t, []uint8{13, 21, 12}, g.Cols()[1])

	assert.Panics(t, func() { g.SetRow(0, []uint8{1}) })
	assert.Panics(t, func() { g.SetCol(0, []uint8{1, 2}) })
}

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

func cell(x, y int, v uint8) *grid.Cell[uint8] {
	return &grid.Cell[uint8]{Pos: point.XY(x, y), Data: v}
}

// TestAdjacent8_Empty checks every slot is absent on an empty grid.
func TestAdjacent8_Empty(t *testing.T) {
	g := newGrid(t, nil)
	assert.Equal(t, grid.Adj8[uint8]{}, g.Adjacent8(point.XY(0, 0)))
	assert.Equal(t, grid.Adj8[uint8]{}, g.Adjacent8(point.XY(1, 1)))
}

// TestAdjacent8_OneRow checks a single row only yields left/right.
func TestAdjacent8_OneRow(t *testing.T) {
	g := newGrid(t, [][]uint8{{1, 2, 3, 4, 5, 6, 7}})
	assert.Equal(t, grid.Adj8[uint8]{Cells: [8]*grid.Cell[uint8]{
		nil, nil, nil,
		nil /*     */, cell(1, 0, 2),
		nil, nil, nil,
	}}, g.Adjacent8(point.XY(0, 0)))
	assert.Equal(t, grid.Adj8[uint8]{Cells: [8]*grid.Cell[uint8]{
		nil, nil, nil,
		cell(2, 0, 3), cell(4, 0, 5),
		nil, nil, nil,
	}}, g.Adjacent8(point.XY(3, 0)))
}

// TestAdjacent8_Order pins the row-major slot order on a 3×3 grid.
func TestAdjacent8_Order(t *testing.T) {
	g := newGrid(t, [][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	a := g.Adjacent8(point.XY(1, 1))
	assert.Equal(t, grid.Adj8[uint8]{Cells: [8]*grid.Cell[uint8]{
		cell(0, 0, 1), cell(1, 0, 2), cell(2, 0, 3),
		cell(0, 1, 4) /*          */, cell(2, 1, 6),
		cell(0, 2, 7), cell(1, 2, 8), cell(2, 2, 9),
	}}, a)
	assert.Equal(t, uint8(1), a.UpLeft().Data)
	assert.Equal(t, uint8(9), a.DownRight().Data)
	assert.Len(t, a.Present(), 8)

	corner := g.Adjacent8(point.XY(0, 0))
	assert.Nil(t, corner.UpLeft())
	assert.Nil(t, corner.Up())
	assert.Nil(t, corner.Left())
	assert.Equal(t, cell(1, 1, 5), corner.DownRight())
	assert.Len(t, corner.Present(), 3)
}

// TestAdjacent4_Order pins up, left, right, down.
func TestAdjacent4_Order(t *testing.T) {
	g := newGrid(t, [][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	a := g.Adjacent4(point.XY(1, 1))
	assert.Equal(t, uint8(2), a.Up().Data)
	assert.Equal(t, uint8(4), a.Left().Data)
	assert.Equal(t, uint8(6), a.Right().Data)
	assert.Equal(t, uint8(8), a.Down().Data)

	edge := g.Adjacent4(point.XY(2, 0))
	assert.Nil(t, edge.Up())
	assert.Nil(t, edge.Right())
	assert.Equal(t, []grid.Cell[uint8]{*cell(1, 0, 2), *cell(2, 1, 6)}, edge.Present())
}

//----------------------------------------------------------------------------//
// Kernels
//----------------------------------------------------------------------------//

// TestMatchKernel covers wildcards, mismatches and kernels hanging off the edge.
func TestMatchKernel(t *testing.T) {
	g, err := grid.New([][]rune{
		[]rune("M.S"),
		[]rune(".A."),
		[]rune("M.S"),
	})
	require.NoError(t, err)

	x := grid.Kernel[rune]{
		{grid.Is('M'), grid.Any[rune](), grid.Is('S')},
		{grid.Any[rune](), grid.Is('A'), grid.Any[rune]()},
		{grid.Is('M'), grid.Any[rune](), grid.Is('S')},
	}
	assert.True(t, grid.MatchKernel(g, x, point.XY(0, 0)))
	assert.False(t, grid.MatchKernel(g, x, point.XY(1, 0)), "kernel hangs off the right edge")
	assert.False(t, grid.MatchKernel(g, x, point.XY(-1, 0)), "kernel hangs off the left edge")

	wrong := grid.Kernel[rune]{{grid.Is('S')}}
	assert.False(t, grid.MatchKernel(g, wrong, point.XY(0, 0)))

	wild := grid.Kernel[rune]{{grid.Any[rune]()}}
	assert.True(t, grid.MatchKernel(g, wild, point.XY(1, 1)))
}

// TestFind returns matching positions in row-major order.
func TestFind(t *testing.T) {
	g := newGrid(t, [][]uint8{{0, 1}, {1, 0}})
	zeros := grid.Find(g, func(v uint8) bool { return v == 0 })
	assert.Equal(t, []point.Point{point.XY(0, 0), point.XY(1, 1)}, zeros)
}

// TestString renders cells row by row.
func TestString(t *testing.T) {
	g := newGrid(t, [][]uint8{{1, 2}, {3, 4}})
	assert.Equal(t, "12\n34\n", g.String())
}

// TestClone checks clones are independent.
func TestClone(t *testing.T) {
	g := newGrid(t, [][]uint8{{1, 2}})
	c := g.Clone()
	c.Set(0, 0, 5)
	v, _ := g.Get(0, 0)
	assert.Equal(t, uint8(1), v)
}
