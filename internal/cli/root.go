// Package cli implements the kbridge command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/kbridge/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the kbridge CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kbridge",
		Short: "kbridge - K value bridge conformance and benchmarks",
		Long: `Conformance and benchmark harness for bridges that expose the
kdb+/q value model to native code.

Runs assertion suites against a bridge, times list concatenation across
two bridges, and prints the null and infinity borders of every type.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "CUE configuration file")

	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))
	cmd.AddCommand(NewBordersCommand(opts))

	return cmd
}

// Execute runs the command tree with args and returns the process exit
// code. Command errors already reported through the OutputFormatter are
// not printed again; anything else goes to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	var exitErr *ExitError
	if err != nil && (!errors.As(err, &exitErr) || exitErr.Code == ExitFailure) {
		fmt.Fprintf(stderr, "kbridge: %v\n", err)
	}
	return GetExitCode(err)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the formatter for cmd's output streams.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadConfig returns the configuration named by --config, or the schema
// defaults when none is given. The second result is the directory that
// relative paths in the configuration resolve against.
func loadConfig(opts *RootOptions) (*config.Config, string, error) {
	if opts.ConfigPath == "" {
		cfg, err := config.Default()
		if err != nil {
			return nil, "", WrapExitError(ExitCommandError, "failed to load default configuration", err)
		}
		return cfg, "", nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, "", WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	return cfg, filepath.Dir(opts.ConfigPath), nil
}

// useColor resolves a color mode. "auto" follows fatih/color's terminal
// detection, and JSON output is never coloured.
func useColor(mode, format string) bool {
	if format == "json" {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor
}
