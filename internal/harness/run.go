package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/kbridge/internal/bridge"
	"github.com/roach88/kbridge/internal/kval"
)

// ResolveSuite resolves every case's symbol on b, in case order.
// The first failure is returned as a load error.
func ResolveSuite(b bridge.Bridge, s *Suite) ([]bridge.Func, error) {
	fns := make([]bridge.Func, len(s.Cases))
	for i, c := range s.Cases {
		fn, err := bridge.Resolve(b, c.Call, len(c.Args))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve case %q: %w", c.Label, err)
		}
		fns[i] = fn
	}
	return fns, nil
}

// Run executes every case of s against b, recording outcomes in l.
//
// Execution flow:
//  1. Resolve every case's symbol on the bridge
//  2. If any symbol fails to resolve, return the load error; nothing is recorded
//  3. Execute cases in order, one ledger entry per case
//
// Assertion failures are recorded, never returned. The context is checked
// between cases.
func Run(ctx context.Context, s *Suite, b bridge.Bridge, l *Ledger, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fns, err := ResolveSuite(b, s)
	if err != nil {
		return err
	}

	passed, failed := 0, 0
	for i, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("suite %s interrupted: %w", s.Name, err)
		}

		var ok bool
		if c.WantsError() {
			ok = AssertError(l, c.Label, fns[i], c.Args, c.Error)
		} else {
			fn, args := fns[i], c.Args
			ok = AssertEqual(l, c.Label, func() (kval.Value, error) { return fn(args...) }, c.Expect)
		}

		if ok {
			passed++
		} else {
			failed++
		}
		logger.Debug("case finished", "suite", s.Name, "case", c.Label, "passed", ok)
	}

	logger.Info("suite finished",
		"suite", s.Name,
		"bridge", b.Name(),
		"passed", passed,
		"failed", failed,
	)
	return nil
}
