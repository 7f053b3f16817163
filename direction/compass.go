package direction

// Compass is one of the eight cardinal and ordinal directions.
// The declaration order is the row-major scan order of a 3×3 neighbourhood
// with the centre removed.
type Compass uint8

const (
	NorthWest Compass = iota
	North
	NorthEast
	West
	East
	SouthWest
	South
	SouthEast
)

// All returns every compass direction in row-major scan order.
func All() [8]Compass {
	return [8]Compass{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}
}

// Vector returns the unit step for c; ordinal directions step diagonally.
func (c Compass) Vector() (dx, dy int64) {
	switch c {
	case NorthWest:
		return -1, -1
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case West:
		return -1, 0
	case East:
		return 1, 0
	case SouthWest:
		return -1, 1
	case South:
		return 0, 1
	default:
		return 1, 1
	}
}

// Cardinal reports the cardinal direction equal to c, if any.
func (c Compass) Cardinal() (Cardinal, bool) {
	switch c {
	case North:
		return Up, true
	case South:
		return Down, true
	case West:
		return Left, true
	case East:
		return Right, true
	}
	return 0, false
}

// Compass widens d to the 8-way set.
func (d Cardinal) Compass() Compass {
	switch d {
	case Up:
		return North
	case Down:
		return South
	case Left:
		return West
	default:
		return East
	}
}

func (c Compass) String() string {
	return [...]string{"↖️", "⬆️", "↗️", "⬅️", "➡️", "↙️", "⬇️", "↘️"}[c&7]
}
