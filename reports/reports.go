// Package reports classifies reactor level reports as safe or unsafe.
//
// A report is safe when its levels move strictly in one direction and every
// step changes by 1 to 3. The problem dampener also accepts a report that
// becomes safe after removing any single level.
package reports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInput indicates a non-integer level.
var ErrMalformedInput = errors.New("reports: malformed input")

// Report is one line of levels.
type Report []int

// Parse reads one whitespace-separated report per line.
func Parse(input string) ([]Report, error) {
	var out []Report
	for n, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var r Report
		for _, f := range strings.Fields(line) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
			}
			r = append(r, v)
		}
		out = append(out, r)
	}
	return out, nil
}

// Safe reports whether r is strictly monotone with steps of 1 to 3.
// Reports shorter than two levels are safe.
func (r Report) Safe() bool {
	dir := 0
	for i := 1; i < len(r); i++ {
		d := r[i] - r[i-1]
		step := sign(d)
		if step == 0 || d*step > 3 {
			return false
		}
		if dir == 0 {
			dir = step
		}
		if step != dir {
			return false
		}
	}
	return true
}

// Dampened reports whether r is safe, or safe with one level removed.
func (r Report) Dampened() bool {
	if r.Safe() {
		return true
	}
	buf := make(Report, 0, len(r))
	for skip := range r {
		buf = append(buf[:0], r[:skip]...)
		buf = append(buf, r[skip+1:]...)
		if buf.Safe() {
			return true
		}
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func count(rs []Report, ok func(Report) bool) int {
	n := 0
	for _, r := range rs {
		if ok(r) {
			n++
		}
	}
	return n
}

// Part1 counts safe reports.
func Part1(rs []Report) int { return count(rs, Report.Safe) }

// Part2 counts reports that are safe with the dampener.
func Part2(rs []Report) int { return count(rs, Report.Dampened) }
