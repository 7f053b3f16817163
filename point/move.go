package point

import "github.com/katalvlaran/aoc2024/direction"

// Bounds is anything with a rectangular extent anchored at the origin,
// typically a grid.
type Bounds interface {
	Width() int
	Height() int
}

// InBounds reports whether the 2-D point p lies inside b.
func (p Point) InBounds(b Bounds) bool {
	x, y := p.X(), p.Y()
	return x >= 0 && y >= 0 && x < int64(b.Width()) && y < int64(b.Height())
}

// MoveInGrid steps the 2-D point p one cell toward d.
// The second result is false, and p is returned unchanged, when the step
// would leave b.
func (p Point) MoveInGrid(d direction.Cardinal, b Bounds) (Point, bool) {
	dx, dy := d.Vector()
	return p.step(dx, dy, b)
}

// MoveInGridDiag is MoveInGrid over all eight compass directions.
func (p Point) MoveInGridDiag(c direction.Compass, b Bounds) (Point, bool) {
	dx, dy := c.Vector()
	return p.step(dx, dy, b)
}

func (p Point) step(dx, dy int64, b Bounds) (Point, bool) {
	next := p.Add(XY(dx, dy))
	if !next.InBounds(b) {
		return p, false
	}
	return next, true
}
