package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/point"
)

// Grid is a rectangular, row-major collection of cells.
// It is never resized after construction; cells are replaced in place.
type Grid[T any] struct {
	cells [][]T
	width int
}

// New constructs a Grid from rows of equal length.
// It deep-copies the input so later mutation of rows does not leak in.
// An empty input yields an empty 0×0 grid.
// Returns ErrNonRectangular if any row length differs from the first.
func New[T any](rows [][]T) (*Grid[T], error) {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]T, len(rows))
	for y := range rows {
		cells[y] = make([]T, w)
		copy(cells[y], rows[y])
	}

	return &Grid[T]{cells: cells, width: w}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return len(g.cells) }

// Area returns Width×Height.
func (g *Grid[T]) Area() int { return g.width * len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < len(g.cells)
}

// Get returns the cell at (x,y); ok is false when (x,y) is out of bounds.
func (g *Grid[T]) Get(x, y int) (v T, ok bool) {
	if !g.InBounds(x, y) {
		return v, false
	}
	return g.cells[y][x], true
}

// GetPoint is Get addressed by a 2-D point.
func (g *Grid[T]) GetPoint(p point.Point) (T, bool) {
	x, y, ok := g.index(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[y][x], true
}

// Set replaces the cell at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: Set(%d, %d) outside %dx%d grid", x, y, g.width, len(g.cells)))
	}
	g.cells[y][x] = v
}

// SetPoint is Set addressed by a 2-D point. It panics if p is out of bounds.
func (g *Grid[T]) SetPoint(p point.Point, v T) {
	x, y, ok := g.index(p)
	if !ok {
		panic(fmt.Sprintf("grid: SetPoint%v outside %dx%d grid", p, g.width, len(g.cells)))
	}
	g.cells[y][x] = v
}

// SetRow copies row into row index y. It panics on a length mismatch or a bad index.
func (g *Grid[T]) SetRow(y int, row []T) {
	if len(row) != g.width {
		panic(fmt.Sprintf("grid: SetRow length %d, want %d", len(row), g.width))
	}
	if y < 0 || y >= len(g.cells) {
		panic(fmt.Sprintf("grid: SetRow index %d outside %d rows", y, len(g.cells)))
	}
	copy(g.cells[y], row)
}

// SetCol copies col into column index x. It panics on a length mismatch or a bad index.
func (g *Grid[T]) SetCol(x int, col []T) {
	if len(col) != len(g.cells) {
		panic(fmt.Sprintf("grid: SetCol length %d, want %d", len(col), len(g.cells)))
	}
	if x < 0 || x >= g.width {
		panic(fmt.Sprintf("grid: SetCol index %d outside %d columns", x, g.width))
	}
	for y, v := range col {
		g.cells[y][x] = v
	}
}

// Rows returns a copy of the cells, row by row.
func (g *Grid[T]) Rows() [][]T {
	out := make([][]T, len(g.cells))
	for y, row := range g.cells {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Cols returns a copy of the cells, column by column.
func (g *Grid[T]) Cols() [][]T {
	out := make([][]T, g.width)
	for x := range out {
		out[x] = make([]T, len(g.cells))
		for y := range g.cells {
			out[x][y] = g.cells[y][x]
		}
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{cells: g.Rows(), width: g.width}
}

// All calls fn for every cell in row-major order until fn returns false.
func (g *Grid[T]) All(fn func(p point.Point, v T) bool) {
	for y, row := range g.cells {
		for x, v := range row {
			if !fn(point.XY(x, y), v) {
				return
			}
		}
	}
}

// String renders each cell with fmt's %v, one row per line.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, v := range row {
			fmt.Fprint(&b, v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index converts p to (x,y) and reports whether it is inside the grid.
func (g *Grid[T]) index(p point.Point) (x, y int, ok bool) {
	if p.Dim() != 2 {
		return 0, 0, false
	}
	px, py := p.X(), p.Y()
	if px < 0 || py < 0 || px >= int64(g.width) || py >= int64(len(g.cells)) {
		return 0, 0, false
	}
	return int(px), int(py), true
}
