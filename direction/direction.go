// Package direction defines the compass directions used to move across
// two-dimensional grids.
//
// What:
//
//   - Cardinal: the four orthogonal directions Up, Down, Left, Right.
//     Clockwise rotation is total over this set.
//   - Compass: the eight cardinal and ordinal directions, declared in
//     row-major scan order (NorthWest, North, NorthEast, West, East,
//     SouthWest, South, SouthEast).
//
// Both map deterministically to a unit movement vector (dx, dy) where y
// grows downward, matching row-major grid storage.
package direction

import (
	"errors"
	"fmt"
)

// ErrUnknownDirection is returned when a rune names no cardinal direction.
var ErrUnknownDirection = errors.New("direction: unknown direction")

// Cardinal is one of the four orthogonal directions.
type Cardinal uint8

const (
	Up Cardinal = iota
	Down
	Left
	Right
)

// Cardinals lists every cardinal direction in clockwise order starting at Up.
func Cardinals() [4]Cardinal {
	return [4]Cardinal{Up, Right, Down, Left}
}

// CW returns the direction rotated 90° clockwise.
func (d Cardinal) CW() Cardinal {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// CCW returns the direction rotated 90° counter-clockwise.
func (d Cardinal) CCW() Cardinal {
	return d.CW().CW().CW()
}

// Opposite returns the direction rotated 180°.
func (d Cardinal) Opposite() Cardinal {
	return d.CW().CW()
}

// Vector returns the unit step for d. Up is negative y.
func (d Cardinal) Vector() (dx, dy int64) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Rune returns the ASCII guard glyph for d: '^', 'v', '<' or '>'.
func (d Cardinal) Rune() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '>'
	}
}

// String renders d as an arrow.
func (d Cardinal) String() string {
	switch d {
	case Up:
		return "⬆️"
	case Down:
		return "⬇️"
	case Left:
		return "⬅️"
	case Right:
		return "➡️"
	}
	return fmt.Sprintf("Cardinal(%d)", uint8(d))
}

// ParseCardinal maps a guard glyph ('^', 'v', '<', '>') to its direction.
func ParseCardinal(r rune) (Cardinal, error) {
	switch r {
	case '^':
		return Up, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	case '>':
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}
