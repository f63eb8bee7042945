package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/kbridge/internal/bench"
	"github.com/roach88/kbridge/internal/bridge"
	"github.com/roach88/kbridge/internal/kval"
)

// BenchOptions holds flags for the bench command. Unset flags fall back
// to the configuration.
type BenchOptions struct {
	*RootOptions
	BridgeA string
	BridgeB string
	Start   float64
	Step    float64
	Length  int
	Repeat  int
	Seed    uint64
}

// BenchResult is the JSON payload of the bench command.
type BenchResult struct {
	Schedule bench.Schedule `json:"schedule"`
	Repeat   int            `json:"repeat"`
	Seed     uint64         `json:"seed"`
	Table    *bench.Table   `json:"table"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time list concatenation across two bridges",
		Long: `Time concat(list, reverse(list)) on two bridges for a geometric
schedule of list sizes: size i is ceil(2^(start + i*step)).

Each size uses one random long list; the reversal happens before the
clock starts. Elapsed times are reported in nanoseconds.

Examples:
  kbridge bench
  kbridge bench --length 8 --repeat 5
  kbridge bench --bridge-a arrow --bridge-b native --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.BridgeA, "bridge-a", "", "first bridge (default: config bridges.a)")
	cmd.Flags().StringVar(&opts.BridgeB, "bridge-b", "", "second bridge (default: config bridges.b)")
	cmd.Flags().Float64Var(&opts.Start, "start", bench.DefaultStart, "exponent of the first size")
	cmd.Flags().Float64Var(&opts.Step, "step", bench.DefaultStep, "exponent increment between sizes")
	cmd.Flags().IntVar(&opts.Length, "length", bench.DefaultLength, "number of sizes")
	cmd.Flags().IntVar(&opts.Repeat, "repeat", 1, "samples per size; the minimum is reported")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "fixture seed")

	return cmd
}

func runBench(opts *BenchOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, _, err := loadConfig(opts.RootOptions)
	if err != nil {
		formatter.Error(ErrCodeConfig, err.Error(), nil)
		return err
	}

	flags := cmd.Flags()
	nameA, nameB := cfg.Bridges.A, cfg.Bridges.B
	if flags.Changed("bridge-a") {
		nameA = opts.BridgeA
	}
	if flags.Changed("bridge-b") {
		nameB = opts.BridgeB
	}

	sched := cfg.Bench.Schedule()
	if flags.Changed("start") {
		sched.Start = opts.Start
	}
	if flags.Changed("step") {
		sched.Step = opts.Step
	}
	if flags.Changed("length") {
		sched.Length = opts.Length
	}
	repeat := cfg.Bench.Repeat
	if flags.Changed("repeat") {
		repeat = opts.Repeat
	}
	seed := cfg.Bench.Seed
	if flags.Changed("seed") {
		seed = opts.Seed
	}

	if nameA == nameB {
		msg := fmt.Sprintf("bench needs two different bridges, got %q twice", nameA)
		formatter.Error(ErrCodeConfig, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	if err := sched.Validate(); err != nil {
		formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid schedule", err)
	}
	if repeat < 1 {
		msg := fmt.Sprintf("repeat must be at least 1, got %d", repeat)
		formatter.Error(ErrCodeConfig, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	a, err := bridge.Open(nameA, io.Discard)
	if err != nil {
		formatter.Error(ErrCodeLoad, kval.Diagnostic(err), map[string]string{"bridge": nameA})
		return WrapExitError(ExitCommandError, "failed to open bridge", err)
	}
	b, err := bridge.Open(nameB, io.Discard)
	if err != nil {
		formatter.Error(ErrCodeLoad, kval.Diagnostic(err), map[string]string{"bridge": nameB})
		return WrapExitError(ExitCommandError, "failed to open bridge", err)
	}

	table, err := bench.Run(cmd.Context(), a, b, bench.Options{
		Schedule: sched,
		Repeat:   repeat,
		Seed:     seed,
		Logger:   formatter.Logger(),
	})
	if err != nil {
		formatter.Error(ErrCodeBench, err.Error(), nil)
		return WrapExitError(ExitCommandError, "benchmark aborted", err)
	}

	result := BenchResult{Schedule: sched, Repeat: repeat, Seed: seed, Table: table}
	return formatter.Success(result, table.Render)
}
