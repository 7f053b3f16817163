// Package antenna locates the antinodes created by pairs of same-frequency
// antennas on a rectangular map.
package antenna

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2024/point"
)

// City is the map extent and antenna positions grouped by frequency.
type City struct {
	width, height int
	Antennas      map[rune][]point.Point
}

func (c *City) Width() int  { return c.width }
func (c *City) Height() int { return c.height }

// Parse reads the map; '.' is empty, any other character is an antenna of
// that frequency.
func Parse(input string) (*City, error) {
	c := &City{Antennas: make(map[rune][]point.Point)}
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	for y, line := range lines {
		cells := []rune(strings.TrimRight(line, "\r"))
		if y == 0 {
			c.width = len(cells)
		} else if len(cells) != c.width {
			return nil, fmt.Errorf("antenna: line %d has width %d, want %d", y+1, len(cells), c.width)
		}
		for x, r := range cells {
			if r != '.' {
				c.Antennas[r] = append(c.Antennas[r], point.XY(x, y))
			}
		}
	}
	c.height = len(lines)
	return c, nil
}

// Frequencies returns the antenna frequencies in ascending order.
func (c *City) Frequencies() []rune {
	return slices.Sorted(maps.Keys(c.Antennas))
}

// Antinodes returns the distinct in-bounds antinodes.
// Without harmonics each ordered pair (a, b) yields a + (a - b) only.
// With harmonics every multiple of a - b from a onward counts, including a.
func (c *City) Antinodes(harmonics bool) map[point.Point]struct{} {
	out := make(map[point.Point]struct{})
	for _, f := range c.Frequencies() {
		locs := c.Antennas[f]
		for _, a := range locs {
			for _, b := range locs {
				if a == b {
					continue
				}
				step := a.Sub(b)
				p := a
				if !harmonics {
					p = a.Add(step)
				}
				for p.InBounds(c) {
					out[p] = struct{}{}
					if !harmonics {
						break
					}
					p = p.Add(step)
				}
			}
		}
	}
	return out
}

func Part1(c *City) int { return len(c.Antinodes(false)) }

func Part2(c *City) int { return len(c.Antinodes(true)) }
