// Package calibrate decides which bridge calibration equations can be made
// true by inserting operators between their terms.
//
// Operators are evaluated strictly left to right with no precedence.
// Solvable works backwards from the target: the last operator must undo
// cleanly (subtract, divide evenly, strip a decimal suffix), which prunes
// most of the 3^(n-1) operator choices without enumerating them.
package calibrate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrMalformedInput indicates a line not shaped "target: t1 t2 ...".
var ErrMalformedInput = errors.New("calibrate: malformed input")

// Op is a binary operator.
type Op uint8

const (
	Add Op = iota
	Mul
	Concat // decimal concatenation: 12 ‖ 345 = 12345
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Concat:
		return "||"
	}
	return "?"
}

// Apply evaluates a o b.
func (o Op) Apply(a, b uint64) uint64 {
	switch o {
	case Add:
		return a + b
	case Mul:
		return a * b
	case Concat:
		return Join(a, b)
	}
	panic(fmt.Sprintf("calibrate: unknown operator %d", o))
}

// Digits returns the number of decimal digits of v; zero has one digit.
func Digits[T constraints.Unsigned](v T) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Pow10 returns 10^n.
func Pow10[T constraints.Unsigned](n int) T {
	p := T(1)
	for range n {
		p *= 10
	}
	return p
}

// Join concatenates the decimal digits of a and b.
func Join[T constraints.Unsigned](a, b T) T {
	return a*Pow10[T](Digits(b)) + b
}

// Equation is a target and the terms to combine.
type Equation struct {
	Target uint64
	Terms  []uint64
}

// Parse reads one "target: t1 t2 ..." equation per line.
func Parse(input string) ([]Equation, error) {
	var out []Equation
	for n, line := range strings.Split(strings.TrimSpace(input), "\n") {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no ':'", ErrMalformedInput, n+1)
		}
		target, err := strconv.ParseUint(strings.TrimSpace(head), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		eq := Equation{Target: target}
		for _, f := range strings.Fields(tail) {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
			}
			eq.Terms = append(eq.Terms, v)
		}
		if len(eq.Terms) == 0 {
			return nil, fmt.Errorf("%w: line %d has no terms", ErrMalformedInput, n+1)
		}
		out = append(out, eq)
	}
	return out, nil
}

// Evaluate folds the terms left to right with ops; len(ops) must be
// len(Terms)-1.
func (e Equation) Evaluate(ops []Op) uint64 {
	acc := e.Terms[0]
	for i, op := range ops {
		acc = op.Apply(acc, e.Terms[i+1])
	}
	return acc
}

// Solvable reports whether some choice of ops makes the terms equal Target.
func (e Equation) Solvable(ops ...Op) bool {
	return solve(e.Target, e.Terms, ops)
}

func solve(target uint64, terms []uint64, ops []Op) bool {
	last := len(terms) - 1
	if last == 0 {
		return terms[0] == target
	}
	t, rest := terms[last], terms[:last]
	for _, op := range ops {
		switch op {
		case Add:
			if target >= t && solve(target-t, rest, ops) {
				return true
			}
		case Mul:
			if t == 0 {
				if target == 0 {
					return true
				}
				continue
			}
			if target%t == 0 && solve(target/t, rest, ops) {
				return true
			}
		case Concat:
			p := Pow10[uint64](Digits(t))
			if target%p == t && solve(target/p, rest, ops) {
				return true
			}
		}
	}
	return false
}

func total(eqs []Equation, ops ...Op) uint64 {
	var sum uint64
	for _, e := range eqs {
		if e.Solvable(ops...) {
			sum += e.Target
		}
	}
	return sum
}

// Part1 sums the targets reachable with + and *.
func Part1(eqs []Equation) uint64 { return total(eqs, Add, Mul) }

// Part2 adds concatenation.
func Part2(eqs []Equation) uint64 { return total(eqs, Add, Mul, Concat) }
