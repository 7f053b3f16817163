package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/calendar"
	"github.com/katalvlaran/aoc2024/config"
	"github.com/katalvlaran/aoc2024/logger"
	"github.com/katalvlaran/aoc2024/runner"
)

// allDays is the positional argument selecting every day.
const allDays = "all"

var errBadDay = errors.New("DAY must be 1 through 25, or \"all\"")

type flags struct {
	part       int
	example    bool
	input      string
	variant    string
	configPath string
	logLevel   string
	color      string
	profileDir string
}

// parseDay returns 0 for "all".
func parseDay(arg string) (int, error) {
	if strings.EqualFold(arg, allDays) {
		return 0, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < calendar.First || n > calendar.Last {
		return 0, fmt.Errorf("%w: got %q", errBadDay, arg)
	}
	return n, nil
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "aoc DAY|all",
		Short: "Run Advent of Code 2024 solutions",
		Long: `Runs one day, or every day, and prints each answer with its run time.
Inputs are read from <input_dir>/d<DAY> unless --input or --example is given.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			if _, err := parseDay(args[0]); err != nil {
				return err
			}
			if f.part < 0 || f.part > 2 {
				return fmt.Errorf("%w: got %d", calendar.ErrPartOutOfRange, f.part)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			day, _ := parseDay(args[0])
			return run(cmd, f, day)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultFile, "YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&f.color, "color", "", "colour output: auto, always or never")

	fl := root.Flags()
	fl.IntVarP(&f.part, "part", "p", 0, "run only part 1 or 2")
	fl.BoolVarP(&f.example, "example", "e", false, "use the bundled example input")
	fl.StringVarP(&f.input, "input", "i", "", "read input from this file")
	fl.StringVar(&f.variant, "variant", "", "run a named alternative solver (see list)")
	fl.StringVar(&f.profileDir, "profile", "", "write a CPU profile into this directory")

	root.AddCommand(newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, d := range calendar.Days() {
				fmt.Fprintf(w, "%2d  %s", d.Number, d.Title)
				for _, v := range d.Variants {
					fmt.Fprintf(w, "  [p%d %s]", v.Part, v.Name)
				}
				fmt.Fprintln(w)
			}
		},
	}
}

// settings merges the config layers with any flags the user set.
func settings(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath, config.WithRequired(cmd.Flags().Changed("config")))
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = config.Color(f.color)
	}
	return cfg, cfg.Validate()
}

// useColor resolves the colour mode against the output stream.
func useColor(mode config.Color, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func run(cmd *cobra.Command, f flags, day int) error {
	cfg, err := settings(cmd, f)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())

	if f.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(f.profileDir), profile.Quiet).Stop()
		log.Info().Str("dir", f.profileDir).Msg("cpu profiling enabled")
	}

	out := cmd.OutOrStdout()
	r, err := runner.New(
		runner.WithPart(f.part),
		runner.WithExample(f.example),
		runner.WithInput(f.input),
		runner.WithVariant(f.variant),
		runner.WithDirs(cfg.InputDir, cfg.ExampleDir),
		runner.WithColor(useColor(cfg.Color, out)),
		runner.WithOutput(out),
		runner.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if day == 0 {
		return r.RunAll(cmd.Context())
	}
	return r.Run(cmd.Context(), day)
}
