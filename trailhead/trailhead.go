// Package trailhead scores hiking trails on a topographic map.
//
// A trail starts at height 0, ends at height 9 and climbs exactly one unit
// per orthogonal step. A trailhead's score is the number of distinct peaks it
// reaches; its rating is the number of distinct trails leaving it.
package trailhead

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/dfs"
	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/point"
)

// ErrMalformedInput indicates a map character that is neither a digit nor '.'.
var ErrMalformedInput = errors.New("trailhead: malformed input")

const (
	// Peak is the height every trail ends at.
	Peak uint8 = 9
	// Impassable marks a '.' cell; no step ever enters or leaves it.
	Impassable uint8 = 0xFF
)

// Option configures a Map.
type Option func(*Map)

// WithOnVisit installs fn, called for every cell a search enters.
func WithOnVisit(fn func(p point.Point, height uint8)) Option {
	return func(m *Map) {
		m.onVisit = fn
	}
}

// Map is the height grid and its trailheads in row-major order.
type Map struct {
	Heights    *grid.Grid[uint8]
	Trailheads []point.Point
	onVisit    func(point.Point, uint8)
}

// Parse reads one digit per cell; '.' is impassable.
func Parse(input string, opts ...Option) (*Map, error) {
	var (
		rows  [][]uint8
		heads []point.Point
	)
	for y, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		cells := []rune(strings.TrimRight(line, "\r"))
		row := make([]uint8, 0, len(cells))
		for x, c := range cells {
			switch {
			case c == '.':
				row = append(row, Impassable)
			case c >= '0' && c <= '9':
				if c == '0' {
					heads = append(heads, point.XY(x, y))
				}
				row = append(row, uint8(c-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at line %d", ErrMalformedInput, c, y+1)
			}
		}
		rows = append(rows, row)
	}

	heights, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("trailhead: %w", err)
	}
	m := &Map{Heights: heights, Trailheads: heads}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// steps returns the in-grid orthogonal neighbours of p. Whether a step
// is walkable is decided by climbs.
func (m *Map) steps(p point.Point) []point.Point {
	var out []point.Point
	for _, c := range m.Heights.Adjacent4(p).Present() {
		out = append(out, c.Pos)
	}
	return out
}

// climbs reports whether a trail may step from one cell to the next: the
// target is exactly one unit higher and the source is below the peak.
func (m *Map) climbs(from, to point.Point) bool {
	hf, _ := m.Heights.GetPoint(from)
	ht, _ := m.Heights.GetPoint(to)
	return hf < Peak && ht == hf+1
}

func (m *Map) visit(p point.Point) {
	if m.onVisit != nil {
		h, _ := m.Heights.GetPoint(p)
		m.onVisit(p, h)
	}
}

// walk climbs from start along every walkable step. No trail is longer
// than Peak steps, so the walk never goes deeper.
func (m *Map) walk(ctx context.Context, start point.Point, more ...dfs.Option[point.Point]) (*dfs.Result[point.Point], error) {
	opts := append([]dfs.Option[point.Point]{
		dfs.WithContext[point.Point](ctx),
		dfs.WithFilter(m.climbs),
		dfs.WithMaxDepth[point.Point](int(Peak)),
		dfs.WithOnVisit(func(p point.Point, _ int) error {
			m.visit(p)
			return nil
		}),
	}, more...)
	return dfs.Walk(start, m.steps, opts...)
}

// Score counts the distinct peaks reachable from start. Each call searches
// independently; nothing is shared between trailheads.
func (m *Map) Score(ctx context.Context, start point.Point) (int, error) {
	peaks := 0
	_, err := m.walk(ctx, start, dfs.WithOnExit(func(p point.Point) error {
		if h, _ := m.Heights.GetPoint(p); h == Peak {
			peaks++
		}
		return nil
	}))
	if err != nil {
		return 0, fmt.Errorf("trailhead: score %v: %w", start, err)
	}
	return peaks, nil
}

// Route returns one trail from start to peak, both ends included. The bool
// is false when peak is not reachable from start.
func (m *Map) Route(ctx context.Context, start, peak point.Point) ([]point.Point, bool, error) {
	res, err := m.walk(ctx, start)
	if err != nil {
		return nil, false, fmt.Errorf("trailhead: route %v: %w", start, err)
	}
	if !res.Visited[peak] {
		return nil, false, nil
	}

	trail := make([]point.Point, res.Depth[peak]+1)
	for i, p := len(trail)-1, peak; i >= 0; i-- {
		trail[i] = p
		p = res.Parent[p]
	}
	return trail, true, nil
}

// Rating counts the distinct trails from start to any peak. Heights climb
// strictly, so the trails form a DAG and an unvisited stack walk enumerates
// each path once.
func (m *Map) Rating(start point.Point) int {
	trails := 0
	stack := []point.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		m.visit(p)
		if h, _ := m.Heights.GetPoint(p); h == Peak {
			trails++
			continue
		}
		for _, q := range m.steps(p) {
			if m.climbs(p, q) {
				stack = append(stack, q)
			}
		}
	}
	return trails
}

// Part1 sums the scores of all trailheads. Cancelling ctx stops the
// current search.
func Part1(ctx context.Context, m *Map) (int, error) {
	total := 0
	for _, th := range m.Trailheads {
		n, err := m.Score(ctx, th)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Part2 sums the ratings of all trailheads.
func Part2(m *Map) int {
	total := 0
	for _, th := range m.Trailheads {
		total += m.Rating(th)
	}
	return total
}
