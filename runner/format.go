package runner

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	ColorTree   = lipgloss.Color("#2E8B57")
	ColorID     = lipgloss.Color("#4A90D9")
	ColorMuted  = lipgloss.Color("#6C7A89")
	ColorFailed = lipgloss.Color("#E74C3C")
)

// FormatElapsed renders d in the largest unit it exceeds: s, ms, μs or ns.
// Fractions come from the next smaller whole unit, so at most three decimals
// are shown.
func FormatElapsed(d time.Duration) string {
	var (
		v    float64
		unit string
	)
	switch {
	case d > time.Second:
		v, unit = float64(d.Milliseconds())/1000, "s"
	case d > time.Millisecond:
		v, unit = float64(d.Microseconds())/1000, "ms"
	case d > time.Microsecond:
		v, unit = float64(d.Nanoseconds())/1000, "μs"
	default:
		v, unit = float64(d.Nanoseconds()), "ns"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

// Printer writes result lines, styled when color is enabled.
type Printer struct {
	w      io.Writer
	tree   lipgloss.Style
	id     lipgloss.Style
	muted  lipgloss.Style
	failed lipgloss.Style
}

// NewPrinter returns a Printer writing to w. With color false every line is
// plain text regardless of the terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:      w,
		tree:   r.NewStyle().Foreground(ColorTree),
		id:     r.NewStyle().Foreground(ColorID).Bold(true),
		muted:  r.NewStyle().Foreground(ColorMuted),
		failed: r.NewStyle().Foreground(ColorFailed),
	}
}

func (p *Printer) line(day, part int, rest string) {
	id := fmt.Sprintf("d%dp%d", day, part)
	fmt.Fprintf(p.w, "%s %s %s\n", p.tree.Render("🎄"), p.id.Render(id), rest)
}

// Result prints an answer with its elapsed time.
func (p *Printer) Result(day, part int, answer string, elapsed time.Duration) {
	p.line(day, part, answer+" "+p.muted.Render("("+FormatElapsed(elapsed)+")"))
}

// NoInput reports a part skipped for lack of a readable input.
func (p *Printer) NoInput(day, part int) {
	p.line(day, part, p.muted.Render("no input"))
}

// NoSolution reports a part with no registered solver.
func (p *Printer) NoSolution(day, part int) {
	p.line(day, part, p.muted.Render("no solution"))
}

// Failed reports a part whose solver returned an error.
func (p *Printer) Failed(day, part int, err error) {
	p.line(day, part, p.failed.Render("error: "+err.Error()))
}
