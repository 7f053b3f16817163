package patrol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/direction"
	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/point"
)

var (
	// ErrNoGuard indicates the map has no guard glyph.
	ErrNoGuard = errors.New("patrol: map has no guard")
	// ErrManyGuards indicates the map has more than one guard glyph.
	ErrManyGuards = errors.New("patrol: map has more than one guard")
)

// Spot is the content of one floor cell.
type Spot uint8

const (
	Empty Spot = iota
	Obstacle
)

func (s Spot) String() string {
	if s == Obstacle {
		return "#"
	}
	return "."
}

// Guard is the walker's state. It is comparable and used as the visited key.
type Guard struct {
	Pos     point.Point
	Heading direction.Cardinal
}

// Outcome is the result of one Step.
type Outcome uint8

const (
	// Exited means the guard stepped off the grid; the walk is over.
	Exited Outcome = iota
	// Fresh means the new (position, heading) pair was not seen before.
	Fresh
	// Revisit means the pair was seen before: the walk loops forever.
	Revisit
)

// Option configures a Map.
type Option func(*Map)

// WithOnStep installs fn as an observer called after every transition that
// keeps the guard on the grid.
func WithOnStep(fn func(m *Map, o Outcome)) Option {
	return func(m *Map) {
		m.onStep = fn
	}
}

// Map is the floor, the guard and the set of states seen so far.
type Map struct {
	floor   *grid.Grid[Spot]
	start   Guard
	guard   Guard
	visited map[Guard]struct{}
	onStep  func(*Map, Outcome)
}

// Parse reads the floor: '#' is an obstacle, one of "^v<>" is the guard
// facing that way, anything else is empty floor.
func Parse(input string, opts ...Option) (*Map, error) {
	var (
		rows   [][]Spot
		guard  Guard
		guards int
	)
	for y, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		cells := []rune(strings.TrimRight(line, "\r"))
		row := make([]Spot, 0, len(cells))
		for x, c := range cells {
			switch c {
			case '#':
				row = append(row, Obstacle)
			case '^', 'v', '<', '>':
				d, _ := direction.ParseCardinal(c)
				guard = Guard{Pos: point.XY(x, y), Heading: d}
				guards++
				row = append(row, Empty)
			default:
				row = append(row, Empty)
			}
		}
		rows = append(rows, row)
	}
	switch {
	case guards == 0:
		return nil, ErrNoGuard
	case guards > 1:
		return nil, fmt.Errorf("%w: found %d", ErrManyGuards, guards)
	}

	floor, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("patrol: %w", err)
	}
	m := &Map{floor: floor, start: guard}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()

	return m, nil
}

// Reset puts the guard back at its start and forgets visited states.
// Obstacles are left as they are.
func (m *Map) Reset() {
	m.guard = m.start
	m.visited = map[Guard]struct{}{m.start: {}}
}

// Guard returns the current guard state.
func (m *Map) Guard() Guard { return m.guard }

// Start returns the guard state the map was parsed with.
func (m *Map) Start() Guard { return m.start }

// Step performs one transition and records the resulting state.
func (m *Map) Step() Outcome {
	ahead, ok := m.guard.Pos.MoveInGrid(m.guard.Heading, m.floor)
	if !ok {
		return Exited
	}
	spot, _ := m.floor.GetPoint(ahead)
	if spot == Obstacle {
		m.guard.Heading = m.guard.Heading.CW()
	} else {
		m.guard.Pos = ahead
	}

	out := Fresh
	if _, seen := m.visited[m.guard]; seen {
		out = Revisit
	}
	m.visited[m.guard] = struct{}{}
	if m.onStep != nil {
		m.onStep(m, out)
	}

	return out
}

// Run steps until the guard leaves the grid or repeats a state.
// It reports whether the walk loops.
func (m *Map) Run() (loops bool) {
	for {
		switch m.Step() {
		case Exited:
			return false
		case Revisit:
			return true
		}
	}
}

// Positions returns the distinct cells visited so far, ignoring heading.
func (m *Map) Positions() map[point.Point]struct{} {
	out := make(map[point.Point]struct{}, len(m.visited))
	for g := range m.visited {
		out[g.Pos] = struct{}{}
	}
	return out
}

// Clone returns an independent copy with the same floor and guard state.
// The observer is shared.
func (m *Map) Clone() *Map {
	c := &Map{
		floor:   m.floor.Clone(),
		start:   m.start,
		guard:   m.guard,
		visited: make(map[Guard]struct{}, len(m.visited)),
		onStep:  m.onStep,
	}
	for g := range m.visited {
		c.visited[g] = struct{}{}
	}
	return c
}

// LoopsWith reports whether a fresh walk from the start loops once an
// obstacle is placed at p. The map is restored afterwards.
// p must be an empty cell other than the start.
func (m *Map) LoopsWith(p point.Point) bool {
	m.floor.SetPoint(p, Obstacle)
	defer m.floor.SetPoint(p, Empty)
	m.Reset()
	defer m.Reset()

	return m.Run()
}

// String renders the floor with the guard glyph, '+' for visited cells,
// '#' for obstacles and '.' for empty floor.
func (m *Map) String() string {
	pos := m.Positions()
	var b strings.Builder
	for y := 0; y < m.floor.Height(); y++ {
		for x := 0; x < m.floor.Width(); x++ {
			p := point.XY(x, y)
			spot, _ := m.floor.Get(x, y)
			switch _, seen := pos[p]; {
			case p == m.guard.Pos:
				b.WriteRune(m.guard.Heading.Rune())
			case seen:
				b.WriteByte('+')
			default:
				b.WriteString(spot.String())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Part1 counts the distinct cells the guard visits before leaving.
func Part1(m *Map) int {
	m.Reset()
	m.Run()
	return len(m.Positions())
}

// Part2 counts the cells where a single new obstacle traps the guard in a
// loop. Only cells on the unobstructed walk can change it, so those are the
// candidates; the start cell is never one.
func Part2(m *Map) int {
	m.Reset()
	m.Run()
	candidates := m.Positions()
	delete(candidates, m.start.Pos)

	count := 0
	for p := range candidates {
		if m.LoopsWith(p) {
			count++
		}
	}
	return count
}
