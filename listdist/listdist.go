// Package listdist compares two columns of location ids.
package listdist

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedInput indicates a line that is not two integers.
var ErrMalformedInput = errors.New("listdist: malformed input")

// Lists holds the left and right columns in input order.
type Lists struct {
	Left, Right []int
}

// Parse reads one pair of whitespace-separated integers per line.
func Parse(input string) (*Lists, error) {
	l := &Lists{}
	for n, line := range strings.Split(strings.TrimSpace(input), "\n") {
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedInput, n+1, len(f))
		}
		a, errA := strconv.Atoi(f[0])
		b, errB := strconv.Atoi(f[1])
		if err := errors.Join(errA, errB); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		l.Left = append(l.Left, a)
		l.Right = append(l.Right, b)
	}
	return l, nil
}

// Distance pairs the columns smallest-to-smallest and sums the gaps.
// The input is not modified.
func (l *Lists) Distance() int {
	left, right := slices.Clone(l.Left), slices.Clone(l.Right)
	slices.Sort(left)
	slices.Sort(right)

	sum := 0
	for i := range min(len(left), len(right)) {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// Similarity sums each left id times the number of times it occurs on the right.
func (l *Lists) Similarity() int {
	counts := make(map[int]int, len(l.Right))
	for _, v := range l.Right {
		counts[v]++
	}
	sum := 0
	for _, v := range l.Left {
		sum += v * counts[v]
	}
	return sum
}

func Part1(l *Lists) int { return l.Distance() }

func Part2(l *Lists) int { return l.Similarity() }
