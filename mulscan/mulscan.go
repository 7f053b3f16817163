// Package mulscan extracts mul(a,b) instructions from corrupted memory with a
// single-pass character state machine, optionally honouring do()/don't()
// toggles.
package mulscan

// State is a position in the token automaton.
type State uint8

// Scanning is the idle state: no token is partially matched.
const Scanning State = 0

const (
	stateM         State = iota + 1 // "m"
	stateU                          // "mu"
	stateL                          // "mul"
	stateMulParen                   // "mul("
	stateNum1                       // "mul(1"
	stateComma                      // "mul(1,"
	stateNum2                       // "mul(1,2"
	stateD                          // "d"
	stateO                          // "do"
	stateN                          // "don"
	stateApos                       // "don'"
	stateT                          // "don't"
	stateDoParen                    // "do("
	stateDontParen                  // "don't("
)

// Pair is one emitted mul instruction.
type Pair struct {
	A, B uint64
}

// Machine is the scanner. The zero value is not usable; call New.
type Machine struct {
	state      State
	a, b       uint64
	conds      bool
	mulEnabled bool
}

// New returns a Machine in the Scanning state with mul enabled.
// With conds false the do()/don't() toggles are recognised but ignored.
func New(conds bool) *Machine {
	return &Machine{conds: conds, mulEnabled: true}
}

// State returns the current automaton state.
func (m *Machine) State() State { return m.state }

// Enabled reports whether mul instructions are currently honoured.
func (m *Machine) Enabled() bool { return !m.conds || m.mulEnabled }

// Feed advances the automaton by one character. It returns the operands and
// true when c closes a complete mul(a,b).
// Any unexpected character resets to Scanning; c itself is not retried as the
// start of a new token.
func (m *Machine) Feed(c rune) (Pair, bool) {
	switch {
	case m.state == Scanning && c == 'm' && m.Enabled():
		m.state = stateM
	case m.state == Scanning && c == 'd':
		m.state = stateD
	case m.state == stateM && c == 'u':
		m.state = stateU
	case m.state == stateU && c == 'l':
		m.state = stateL
	case m.state == stateL && c == '(':
		m.state = stateMulParen
	case (m.state == stateMulParen || m.state == stateNum1) && isDigit(c):
		m.a = m.a*10 + uint64(c-'0')
		m.state = stateNum1
	case m.state == stateNum1 && c == ',':
		m.state = stateComma
	case (m.state == stateComma || m.state == stateNum2) && isDigit(c):
		m.b = m.b*10 + uint64(c-'0')
		m.state = stateNum2
	case m.state == stateNum2 && c == ')':
		p := Pair{A: m.a, B: m.b}
		m.reset()
		return p, true
	case m.state == stateD && c == 'o':
		m.state = stateO
	case m.state == stateO && c == '(':
		m.state = stateDoParen
	case m.state == stateO && c == 'n':
		m.state = stateN
	case m.state == stateN && c == '\'':
		m.state = stateApos
	case m.state == stateApos && c == 't':
		m.state = stateT
	case m.state == stateT && c == '(':
		m.state = stateDontParen
	case m.state == stateDoParen && c == ')':
		m.mulEnabled = true
		m.reset()
	case m.state == stateDontParen && c == ')':
		m.mulEnabled = false
		m.reset()
	default:
		m.reset()
	}

	return Pair{}, false
}

// Process folds the whole input through Feed and sums a*b over every
// emitted pair.
func (m *Machine) Process(input string) uint64 {
	var sum uint64
	for _, c := range input {
		if p, ok := m.Feed(c); ok {
			sum += p.A * p.B
		}
	}
	return sum
}

func (m *Machine) reset() {
	m.state = Scanning
	m.a, m.b = 0, 0
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// Parse returns the input unchanged; the machine works on raw characters.
func Parse(input string) (string, error) { return input, nil }

// Part1 sums every mul instruction.
func Part1(memory string) uint64 { return New(false).Process(memory) }

// Part2 sums only mul instructions that are enabled by the latest do()/don't().
func Part2(memory string) uint64 { return New(true).Process(memory) }
