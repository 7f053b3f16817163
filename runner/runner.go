package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoc2024/calendar"
)

var (
	// ErrNoInput indicates the input for a requested part could not be read.
	ErrNoInput = errors.New("runner: input missing or unreadable")
	// ErrNoSolution indicates the requested day has no registered solver.
	ErrNoSolution = errors.New("runner: no solution for day")
)

// Options configures a Runner.
type Options struct {
	// Part selects 1 or 2; 0 runs both.
	Part int
	// Example reads from ExampleDir instead of InputDir.
	Example bool
	// Input, if set, is read for every part and overrides both directories.
	Input string
	// Variant names an alternative solver. Parts without that variant run
	// their default solver.
	Variant string

	InputDir   string
	ExampleDir string

	Color  bool
	Out    io.Writer
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions runs both parts from ./input, uncoloured, to stdout, with
// logging disabled.
func DefaultOptions() Options {
	return Options{
		InputDir:   "input",
		ExampleDir: "examples",
		Out:        os.Stdout,
		Logger:     zerolog.Nop(),
	}
}

func WithPart(n int) Option { return func(o *Options) { o.Part = n } }
func WithExample(on bool) Option { return func(o *Options) { o.Example = on } }
func WithInput(path string) Option { return func(o *Options) { o.Input = path } }
func WithVariant(name string) Option { return func(o *Options) { o.Variant = name } }
func WithColor(on bool) Option { return func(o *Options) { o.Color = on } }
func WithOutput(w io.Writer) Option { return func(o *Options) { o.Out = w } }
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithDirs sets the input and example directories. Empty values keep the
// current setting.
func WithDirs(input, example string) Option {
	return func(o *Options) {
		if input != "" {
			o.InputDir = input
		}
		if example != "" {
			o.ExampleDir = example
		}
	}
}

// Runner executes days from the calendar.
type Runner struct {
	opts    Options
	printer *Printer
	log     zerolog.Logger
}

// New validates opts and returns a Runner.
func New(opts ...Option) (*Runner, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Part < 0 || o.Part > 2 {
		return nil, fmt.Errorf("%w: got %d", calendar.ErrPartOutOfRange, o.Part)
	}
	return &Runner{
		opts:    o,
		printer: NewPrinter(o.Out, o.Color),
		log:     o.Logger,
	}, nil
}

func (r *Runner) parts() []int {
	if r.opts.Part != 0 {
		return []int{r.opts.Part}
	}
	return []int{1, 2}
}

// InputPath returns the file that part of day reads.
func (r *Runner) InputPath(day, part int) string {
	if r.opts.Input != "" {
		return r.opts.Input
	}
	if !r.opts.Example {
		return filepath.Join(r.opts.InputDir, fmt.Sprintf("d%d", day))
	}
	base := filepath.Join(r.opts.ExampleDir, fmt.Sprintf("d%d", day))
	if part == 2 {
		if _, err := os.Stat(base + "-p2"); err == nil {
			return base + "-p2"
		}
	}
	return base
}

// Run solves the selected parts of one day and stops at the first failure.
func (r *Runner) Run(ctx context.Context, day int) error {
	d, ok, err := calendar.Lookup(day)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w %d", ErrNoSolution, day)
	}
	if r.opts.Variant != "" && !r.hasVariant(d) {
		return fmt.Errorf("%w: %q for day %d", calendar.ErrUnknownVariant, r.opts.Variant, day)
	}
	for _, part := range r.parts() {
		if err := ctx.Err(); err != nil {
			return err
		}
		input, err := r.read(day, part)
		if err != nil {
			return err
		}
		if err := r.solve(ctx, d, part, input); err != nil {
			return err
		}
	}
	return nil
}

// RunAll walks every calendar day. Only cancellation stops it early.
func (r *Runner) RunAll(ctx context.Context) error {
	for day := calendar.First; day <= calendar.Last; day++ {
		d, ok, _ := calendar.Lookup(day)
		for _, part := range r.parts() {
			if err := ctx.Err(); err != nil {
				return err
			}
			input, err := r.read(day, part)
			switch {
			case err != nil:
				r.log.Warn().Err(err).Int("day", day).Int("part", part).Msg("skipping")
				r.printer.NoInput(day, part)
			case !ok:
				r.printer.NoSolution(day, part)
			default:
				if err := r.solve(ctx, d, part, input); err != nil {
					r.log.Error().Err(err).Int("day", day).Int("part", part).Msg("solver failed")
				}
			}
		}
	}
	return nil
}

func (r *Runner) read(day, part int) (string, error) {
	path := r.InputPath(day, part)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: day %d: %w", ErrNoInput, day, err)
	}
	r.log.Debug().Int("day", day).Int("part", part).Str("input", path).Msg("read input")
	return string(b), nil
}

// hasVariant reports whether any selected part of d has the configured variant.
func (r *Runner) hasVariant(d calendar.Day) bool {
	for _, part := range r.parts() {
		if _, err := d.Solver(part, r.opts.Variant); err == nil {
			return true
		}
	}
	return false
}

// solver returns the configured variant for part, or the default solver
// when the variant does not cover it.
func (r *Runner) solver(d calendar.Day, part int) (calendar.Solver, error) {
	s, err := d.Solver(part, r.opts.Variant)
	if errors.Is(err, calendar.ErrUnknownVariant) {
		return d.Part(part)
	}
	return s, err
}

// solve times one part and prints its line.
func (r *Runner) solve(ctx context.Context, d calendar.Day, part int, input string) error {
	solver, err := r.solver(d, part)
	if err != nil {
		return err
	}

	start := time.Now()
	answer, err := solver(ctx, input)
	elapsed := time.Since(start)
	if err != nil {
		r.printer.Failed(d.Number, part, err)
		return fmt.Errorf("runner: d%dp%d: %w", d.Number, part, err)
	}

	r.log.Debug().Int("day", d.Number).Int("part", part).Str("variant", r.opts.Variant).Dur("elapsed", elapsed).Msg("solved")
	r.printer.Result(d.Number, part, answer, elapsed)
	return nil
}
