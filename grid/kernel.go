package grid

import "github.com/katalvlaran/aoc2024/point"

// Slot is one entry of a Kernel: either an expected value or a wildcard.
type Slot[T comparable] struct {
	Want T
	Wild bool
}

// Is returns a slot that matches only v.
func Is[T comparable](v T) Slot[T] { return Slot[T]{Want: v} }

// Any returns a wildcard slot.
func Any[T comparable]() Slot[T] { return Slot[T]{Wild: true} }

// Kernel is a small row-major template of slots, usually 3×3.
type Kernel[T comparable] [][]Slot[T]

// MatchKernel reports whether every non-wildcard slot of k equals the grid
// cell it lands on when k's top-left corner is placed at origin.
// A non-wildcard slot that lands outside the grid is a mismatch.
func MatchKernel[T comparable](g *Grid[T], k Kernel[T], origin point.Point) bool {
	for ky, row := range k {
		for kx, s := range row {
			if s.Wild {
				continue
			}
			v, ok := g.GetPoint(origin.Add(point.XY(kx, ky)))
			if !ok || v != s.Want {
				return false
			}
		}
	}
	return true
}

// Find returns the positions of every cell for which match is true,
// in row-major order.
func Find[T any](g *Grid[T], match func(T) bool) []point.Point {
	var out []point.Point
	g.All(func(p point.Point, v T) bool {
		if match(v) {
			out = append(out, p)
		}
		return true
	})
	return out
}
