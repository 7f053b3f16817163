// Package calendar is the dispatch table from puzzle day to solver.
//
// Every part of every day parses the raw input on its own, so the two parts
// never share a model.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/aoc2024/antenna"
	"github.com/katalvlaran/aoc2024/calibrate"
	"github.com/katalvlaran/aoc2024/diskmap"
	"github.com/katalvlaran/aoc2024/listdist"
	"github.com/katalvlaran/aoc2024/mulscan"
	"github.com/katalvlaran/aoc2024/patrol"
	"github.com/katalvlaran/aoc2024/printorder"
	"github.com/katalvlaran/aoc2024/reports"
	"github.com/katalvlaran/aoc2024/trailhead"
	"github.com/katalvlaran/aoc2024/wordsearch"
)

// First and Last bound the valid day numbers.
const (
	First = 1
	Last  = 25
)

var (
	// ErrDayOutOfRange indicates a day number outside First..Last.
	ErrDayOutOfRange = errors.New("calendar: day out of range")
	// ErrPartOutOfRange indicates a part other than 1 or 2.
	ErrPartOutOfRange = errors.New("calendar: part must be 1 or 2")
	// ErrUnknownVariant indicates a variant name not registered for a part.
	ErrUnknownVariant = errors.New("calendar: unknown variant")
)

// Solver turns raw puzzle input into a printable answer. Solvers that
// search check ctx while they run; the rest only check it up front.
type Solver func(ctx context.Context, input string) (string, error)

// Variant is an alternative solver for one part, picked by name.
type Variant struct {
	Name  string
	Part  int
	Solve Solver
}

// Day is one registered puzzle.
type Day struct {
	Number       int
	Title        string
	Part1, Part2 Solver
	Variants     []Variant
}

// Part returns the solver for part 1 or 2.
func (d Day) Part(n int) (Solver, error) {
	switch n {
	case 1:
		return d.Part1, nil
	case 2:
		return d.Part2, nil
	}
	return nil, fmt.Errorf("%w: got %d", ErrPartOutOfRange, n)
}

// Solver returns the solver for part n, or the named variant of it. An
// empty variant selects the default solver.
func (d Day) Solver(n int, variant string) (Solver, error) {
	if variant == "" {
		return d.Part(n)
	}
	for _, v := range d.Variants {
		if v.Part == n && v.Name == variant {
			return v.Solve, nil
		}
	}
	return nil, fmt.Errorf("%w: %q for d%dp%d", ErrUnknownVariant, variant, d.Number, n)
}

// Solve adapts a parser and one part's computation into a Solver.
func Solve[M, A any](parse func(string) (M, error), part func(M) A) Solver {
	return SolveContext(parse, func(_ context.Context, m M) (A, error) {
		return part(m), nil
	})
}

// SolveContext adapts a parser and a cancellable, fallible computation
// into a Solver.
func SolveContext[M, A any](parse func(string) (M, error), part func(context.Context, M) (A, error)) Solver {
	return func(ctx context.Context, input string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		m, err := parse(input)
		if err != nil {
			return "", err
		}
		a, err := part(ctx, m)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(a), nil
	}
}

// noOptions binds a parser that takes options to its zero-option form.
func noOptions[M, O any](parse func(string, ...O) (M, error)) func(string) (M, error) {
	return func(s string) (M, error) { return parse(s) }
}

var registry = map[int]Day{
	1: {Number: 1, Title: "Historian Hysteria",
		Part1: Solve(listdist.Parse, listdist.Part1), Part2: Solve(listdist.Parse, listdist.Part2)},
	2: {Number: 2, Title: "Red-Nosed Reports",
		Part1: Solve(reports.Parse, reports.Part1), Part2: Solve(reports.Parse, reports.Part2)},
	3: {Number: 3, Title: "Mull It Over",
		Part1: Solve(mulscan.Parse, mulscan.Part1), Part2: Solve(mulscan.Parse, mulscan.Part2)},
	4: {Number: 4, Title: "Ceres Search",
		Part1: Solve(wordsearch.Parse, wordsearch.Part1), Part2: Solve(wordsearch.Parse, wordsearch.Part2)},
	5: {Number: 5, Title: "Print Queue",
		Part1: Solve(printorder.Parse, printorder.Part1), Part2: Solve(printorder.Parse, printorder.Part2),
		Variants: []Variant{
			{Name: "topo", Part: 2, Solve: SolveContext(printorder.Parse, printorder.Part2Topological)},
		}},
	6: {Number: 6, Title: "Guard Gallivant",
		Part1: Solve(noOptions(patrol.Parse), patrol.Part1), Part2: Solve(noOptions(patrol.Parse), patrol.Part2)},
	7: {Number: 7, Title: "Bridge Repair",
		Part1: Solve(calibrate.Parse, calibrate.Part1), Part2: Solve(calibrate.Parse, calibrate.Part2)},
	8: {Number: 8, Title: "Resonant Collinearity",
		Part1: Solve(antenna.Parse, antenna.Part1), Part2: Solve(antenna.Parse, antenna.Part2)},
	9: {Number: 9, Title: "Disk Fragmenter",
		Part1: Solve(diskmap.Parse, diskmap.Part1), Part2: Solve(diskmap.Parse, diskmap.Part2)},
	10: {Number: 10, Title: "Hoof It",
		Part1: SolveContext(noOptions(trailhead.Parse), trailhead.Part1), Part2: Solve(noOptions(trailhead.Parse), trailhead.Part2)},
}

// Lookup returns the registered day n. The bool is false for a valid day
// that has no solution yet; an out-of-range n is an error.
func Lookup(n int) (Day, bool, error) {
	if n < First || n > Last {
		return Day{}, false, fmt.Errorf("%w: %d", ErrDayOutOfRange, n)
	}
	d, ok := registry[n]
	return d, ok, nil
}

// Days returns every registered day in ascending order.
func Days() []Day {
	out := make([]Day, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
