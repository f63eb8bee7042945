package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/kbridge/internal/bridge"
	"github.com/roach88/kbridge/internal/harness"
	"github.com/roach88/kbridge/internal/kval"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Bridge       string
	FailOnAssert bool
	Color        string
}

// SuiteResult is one suite's report.
type SuiteResult struct {
	Suite  string         `json:"suite"`
	Report harness.Report `json:"report"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Suites []SuiteResult   `json:"suites"`
	Total  harness.Summary `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test [suite.yaml|dir ...]",
		Short: "Run conformance suites against a bridge",
		Long: `Run conformance suites against one bridge.

Suites are YAML files; a directory contributes every *.yaml and *.yml
file in it. With no arguments the suites listed in the configuration
run, or the built-in suite when none are listed.

Every symbol a suite calls is resolved before any case runs. A symbol
the bridge does not export aborts the run.

Exit codes:
  0 - Run completed (failed assertions included)
  1 - Assertions failed and --fail-on-assert was set
  2 - Command error (bad config, missing suite, unresolved symbol)

Examples:
  kbridge test
  kbridge test ./suites --bridge arrow
  kbridge test sample.yaml --fail-on-assert --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Bridge, "bridge", "", "bridge to test (default: config bridges.a)")
	cmd.Flags().BoolVar(&opts.FailOnAssert, "fail-on-assert", false, "exit 1 when any assertion fails")
	cmd.Flags().StringVar(&opts.Color, "color", "", "colour mode (auto|always|never; default: config color)")

	return cmd
}

func runTests(opts *TestOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := formatter.Logger()

	cfg, baseDir, err := loadConfig(opts.RootOptions)
	if err != nil {
		formatter.Error(ErrCodeConfig, err.Error(), nil)
		return err
	}

	name := cfg.Bridges.A
	if cmd.Flags().Changed("bridge") {
		name = opts.Bridge
	}
	failOnAssert := cfg.FailOnAssert
	if cmd.Flags().Changed("fail-on-assert") {
		failOnAssert = opts.FailOnAssert
	}
	colorMode := cfg.Color
	if cmd.Flags().Changed("color") {
		colorMode = opts.Color
	}

	// Printer output is diagnostic; it only shows with --verbose.
	var printOut io.Writer = io.Discard
	if opts.Verbose {
		printOut = formatter.GetErrWriter()
	}
	b, err := bridge.Open(name, printOut)
	if err != nil {
		formatter.Error(ErrCodeLoad, kval.Diagnostic(err), map[string]string{"bridge": name})
		return WrapExitError(ExitCommandError, "failed to open bridge", err)
	}

	suites, err := selectSuites(args, cfg.Suites, baseDir)
	if err != nil {
		formatter.Error(ErrCodeSuite, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load suites", err)
	}

	// Every symbol of every suite resolves before the first case runs.
	for _, s := range suites {
		if _, err := harness.ResolveSuite(b, s); err != nil {
			formatter.Error(ErrCodeLoad, err.Error(), map[string]string{"suite": s.Name, "bridge": b.Name()})
			return WrapExitError(ExitCommandError, fmt.Sprintf("suite %s does not load", s.Name), err)
		}
	}

	result := TestResult{Suites: make([]SuiteResult, 0, len(suites))}
	ledger := harness.NewLedger()
	var all []harness.Entry

	for _, s := range suites {
		if err := harness.Run(cmd.Context(), s, b, ledger, logger); err != nil {
			code := ErrCodeSuite
			if kval.IsLoadError(err) {
				code = ErrCodeLoad
			}
			formatter.Error(code, err.Error(), map[string]string{"suite": s.Name, "bridge": b.Name()})
			return WrapExitError(ExitCommandError, fmt.Sprintf("suite %s aborted", s.Name), err)
		}
		entries := ledger.Drain()
		all = append(all, entries...)
		result.Suites = append(result.Suites, SuiteResult{Suite: s.Name, Report: harness.NewReport(b.Name(), entries)})
	}
	result.Total = harness.Summarize(all)

	colored := useColor(colorMode, opts.Format)
	text := func(w io.Writer) error {
		for i, sr := range result.Suites {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", sr.Suite)
			if err := harness.WriteText(w, sr.Report, colored); err != nil {
				return err
			}
		}
		return nil
	}

	if result.Total.AllPassed() {
		return formatter.Success(result, text)
	}

	msg := fmt.Sprintf("%d assertion(s) failed", result.Total.Failed)
	if err := formatter.Failure(result, ErrCodeAssert, msg, text); err != nil {
		return err
	}
	if failOnAssert {
		return NewExitError(ExitFailure, msg)
	}
	return nil
}

// selectSuites picks the suites to run: explicit arguments first, then
// the configured paths, then the built-in suite.
func selectSuites(args, configured []string, baseDir string) ([]*harness.Suite, error) {
	if len(args) > 0 {
		return harness.LoadSuites(args, "")
	}
	if len(configured) > 0 {
		return harness.LoadSuites(configured, baseDir)
	}
	return []*harness.Suite{harness.BuiltinSuite()}, nil
}
