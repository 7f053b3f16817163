// Package printorder validates and repairs page-update sequences against
// a set of pairwise "must print before" rules.
//
// Input grammar: a block of "a|b" rule lines, one blank line, then a
// block of comma-separated page sequences.
//
// The rule relation is assumed acyclic and total over the pages of each
// sequence. Repairs on input that breaks that assumption are undefined;
// they are not detected by Fix. FixTopological does report
// dfs.ErrCycleDetected for cyclic rules.
package printorder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/dfs"
)

// ErrMalformedInput is returned when a rule or update line cannot be parsed.
var ErrMalformedInput = errors.New("printorder: malformed input")

// Rule says page Before must be printed before page After.
type Rule struct {
	Before, After int
}

// Plan is the parsed puzzle: the rule relation and the page updates.
type Plan struct {
	Rules   map[Rule]struct{}
	Updates [][]int
}

// Parse reads rules, a blank line, then updates.
func Parse(input string) (*Plan, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	rules, updates, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing blank line between rules and updates", ErrMalformedInput)
	}

	plan := &Plan{Rules: make(map[Rule]struct{})}
	for _, line := range strings.Split(strings.TrimSpace(rules), "\n") {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("%w: rule %q", ErrMalformedInput, line)
		}
		before, err1 := strconv.Atoi(a)
		after, err2 := strconv.Atoi(b)
		if err := errors.Join(err1, err2); err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", ErrMalformedInput, line, err)
		}
		plan.Rules[Rule{before, after}] = struct{}{}
	}

	for _, line := range strings.Split(strings.TrimSpace(updates), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		pages := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: update %q: %v", ErrMalformedInput, line, err)
			}
			pages[i] = n
		}
		plan.Updates = append(plan.Updates, pages)
	}

	return plan, nil
}

// Precedes reports whether a rule puts a before b.
func (p *Plan) Precedes(a, b int) bool {
	_, ok := p.Rules[Rule{a, b}]
	return ok
}

// InOrder reports whether every adjacent pair of pages is backed by a rule.
// Sequences of length 0 or 1 are trivially in order.
func (p *Plan) InOrder(pages []int) bool {
	for i := 0; i+1 < len(pages); i++ {
		if !p.Precedes(pages[i], pages[i+1]) {
			return false
		}
	}
	return true
}

// Fix returns a reordered copy of pages: a sorts before b when the rule
// (a, b) exists, otherwise b sorts before a.
func (p *Plan) Fix(pages []int) []int {
	sorted := slices.Clone(pages)
	slices.SortFunc(sorted, func(a, b int) int {
		if p.Precedes(a, b) {
			return -1
		}
		return 1
	})
	return sorted
}

// FixTopological reorders pages by a topological sort of the rules
// restricted to those pages. Unlike Fix it detects cyclic rules and returns
// dfs.ErrCycleDetected. Cancelling ctx aborts the sort.
func (p *Plan) FixTopological(ctx context.Context, pages []int) ([]int, error) {
	next := func(a int) []int {
		var out []int
		for _, b := range pages {
			if b != a && p.Precedes(a, b) {
				out = append(out, b)
			}
		}
		return out
	}
	order, err := dfs.TopologicalSort(pages, next, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("printorder: update %v: %w", pages, err)
	}
	return order, nil
}

// Correct returns the updates that are already in order.
func (p *Plan) Correct() [][]int {
	var out [][]int
	for _, u := range p.Updates {
		if p.InOrder(u) {
			out = append(out, u)
		}
	}
	return out
}

// Repaired returns every out-of-order update after Fix.
func (p *Plan) Repaired() [][]int {
	var out [][]int
	for _, u := range p.Updates {
		if !p.InOrder(u) {
			out = append(out, p.Fix(u))
		}
	}
	return out
}

// Part1 sums the middle page of every correctly ordered update.
func Part1(p *Plan) int {
	return sumMiddles(p.Correct())
}

// Part2 sums the middle page of every repaired update.
func Part2(p *Plan) int {
	return sumMiddles(p.Repaired())
}

// Part2Topological is Part2 repaired with FixTopological, so cyclic rules
// surface as an error instead of an arbitrary order.
func Part2Topological(ctx context.Context, p *Plan) (int, error) {
	var repaired [][]int
	for _, u := range p.Updates {
		if p.InOrder(u) {
			continue
		}
		fixed, err := p.FixTopological(ctx, u)
		if err != nil {
			return 0, err
		}
		repaired = append(repaired, fixed)
	}
	return sumMiddles(repaired), nil
}

func sumMiddles(updates [][]int) int {
	sum := 0
	for _, u := range updates {
		if len(u) > 0 {
			sum += u[len(u)/2]
		}
	}
	return sum
}
