package grid

import "github.com/katalvlaran/aoc2024/point"

// Cell is a snapshot of one grid cell: its position and the value it held.
// Cells are produced by adjacency queries and are not kept in sync with the grid.
type Cell[T any] struct {
	Pos  point.Point
	Data T
}

// Adj4 holds the orthogonal neighbours of a point, in the order
// up, left, right, down. A nil slot is a neighbour outside the grid.
type Adj4[T any] struct {
	Cells [4]*Cell[T]
}

func (a Adj4[T]) Up() *Cell[T]    { return a.Cells[0] }
func (a Adj4[T]) Left() *Cell[T]  { return a.Cells[1] }
func (a Adj4[T]) Right() *Cell[T] { return a.Cells[2] }
func (a Adj4[T]) Down() *Cell[T]  { return a.Cells[3] }

// Present returns the in-grid neighbours, preserving slot order.
func (a Adj4[T]) Present() []Cell[T] {
	return present(a.Cells[:])
}

// Adj8 holds all eight neighbours of a point in row-major scan order:
//
//	↖ ↑ ↗
//	←   →
//	↙ ↓ ↘
//
// Callers may index Cells by position; the order never changes.
type Adj8[T any] struct {
	Cells [8]*Cell[T]
}

func (a Adj8[T]) UpLeft() *Cell[T]    { return a.Cells[0] }
func (a Adj8[T]) Up() *Cell[T]        { return a.Cells[1] }
func (a Adj8[T]) UpRight() *Cell[T]   { return a.Cells[2] }
func (a Adj8[T]) Left() *Cell[T]      { return a.Cells[3] }
func (a Adj8[T]) Right() *Cell[T]     { return a.Cells[4] }
func (a Adj8[T]) DownLeft() *Cell[T]  { return a.Cells[5] }
func (a Adj8[T]) Down() *Cell[T]      { return a.Cells[6] }
func (a Adj8[T]) DownRight() *Cell[T] { return a.Cells[7] }

// Present returns the in-grid neighbours, preserving slot order.
func (a Adj8[T]) Present() []Cell[T] {
	return present(a.Cells[:])
}

// Offsets of each slot, matching the Adj4 and Adj8 orders.
var (
	offsets4 = [4][2]int64{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	offsets8 = [8][2]int64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// Adjacent4 returns the up, left, right and down neighbours of p.
func (g *Grid[T]) Adjacent4(p point.Point) Adj4[T] {
	var a Adj4[T]
	for i, d := range offsets4 {
		a.Cells[i] = g.cellAt(p, d)
	}
	return a
}

// Adjacent8 returns all eight neighbours of p in row-major scan order.
func (g *Grid[T]) Adjacent8(p point.Point) Adj8[T] {
	var a Adj8[T]
	for i, d := range offsets8 {
		a.Cells[i] = g.cellAt(p, d)
	}
	return a
}

// cellAt snapshots the cell at p+d, or returns nil if it is off-grid.
func (g *Grid[T]) cellAt(p point.Point, d [2]int64) *Cell[T] {
	q := p.Add(point.XY(d[0], d[1]))
	v, ok := g.GetPoint(q)
	if !ok {
		return nil
	}
	return &Cell[T]{Pos: q, Data: v}
}

func present[T any](cells []*Cell[T]) []Cell[T] {
	out := make([]Cell[T], 0, len(cells))
	for _, c := range cells {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
