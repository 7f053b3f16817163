// Package wordsearch finds XMAS in a letter grid, along any of the eight
// compass rays and as crossed MAS pairs.
package wordsearch

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/direction"
	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/point"
)

// Word is the ray search target.
const Word = "XMAS"

// Parse reads the letter grid.
func Parse(input string) (*grid.Grid[rune], error) {
	var rows [][]rune
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		rows = append(rows, []rune(strings.TrimRight(line, "\r")))
	}
	g, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("wordsearch: %w", err)
	}
	return g, nil
}

// Ray reports whether word is spelled from start toward c.
func Ray(g *grid.Grid[rune], word string, start point.Point, c direction.Compass) bool {
	p := start
	for i, want := range []rune(word) {
		if i > 0 {
			var ok bool
			if p, ok = p.MoveInGridDiag(c, g); !ok {
				return false
			}
		}
		if v, _ := g.GetPoint(p); v != want {
			return false
		}
	}
	return true
}

// CountRays counts every occurrence of word along all eight directions,
// overlaps included.
func CountRays(g *grid.Grid[rune], word string) int {
	if word == "" {
		return 0
	}
	first := []rune(word)[0]
	n := 0
	for _, p := range grid.Find(g, func(r rune) bool { return r == first }) {
		for _, c := range direction.All() {
			if Ray(g, word, p, c) {
				n++
			}
		}
	}
	return n
}

// Crosses are the four orientations of two MAS words crossing on their A.
var Crosses = func() []grid.Kernel[rune] {
	is, wild := grid.Is[rune], grid.Any[rune]()
	cross := func(tl, tr, bl, br rune) grid.Kernel[rune] {
		return grid.Kernel[rune]{
			{is(tl), wild, is(tr)},
			{wild, is('A'), wild},
			{is(bl), wild, is(br)},
		}
	}
	return []grid.Kernel[rune]{
		cross('M', 'M', 'S', 'S'),
		cross('S', 'M', 'S', 'M'),
		cross('S', 'S', 'M', 'M'),
		cross('M', 'S', 'M', 'S'),
	}
}()

// CountCrosses counts placements where one of Crosses matches.
func CountCrosses(g *grid.Grid[rune]) int {
	n := 0
	g.All(func(p point.Point, _ rune) bool {
		for _, k := range Crosses {
			if grid.MatchKernel(g, k, p) {
				n++
			}
		}
		return true
	})
	return n
}

func Part1(g *grid.Grid[rune]) int { return CountRays(g, Word) }

func Part2(g *grid.Grid[rune]) int { return CountCrosses(g) }
