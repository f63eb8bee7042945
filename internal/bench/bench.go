package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/kbridge/internal/bridge"
	"github.com/roach88/kbridge/internal/kval"
)

// Clock reads a monotonic instant as an offset from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// monotonic reads the process monotonic clock.
type monotonic struct{ origin time.Time }

func (m monotonic) Now() time.Duration { return time.Since(m.origin) }

// MonotonicClock returns a Clock backed by the runtime's monotonic reading.
func MonotonicClock() Clock { return monotonic{origin: time.Now()} }

// Options configure a run. Zero values select the defaults.
type Options struct {
	// Schedule picks the list sizes. A zero schedule means DefaultSchedule.
	Schedule Schedule

	// Repeat is the number of samples per size and bridge; the minimum is kept.
	Repeat int

	// Seed feeds the fixture generator.
	Seed uint64

	Clock  Clock
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Schedule == (Schedule{}) {
		o.Schedule = DefaultSchedule()
	}
	if o.Repeat <= 0 {
		o.Repeat = 1
	}
	if o.Clock == nil {
		o.Clock = MonotonicClock()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Run times concat(list, reverse(list)) on a and b for every scheduled size.
// Any bridge error aborts the run. ctx is checked between sizes.
func Run(ctx context.Context, a, b bridge.Bridge, opts Options) (*Table, error) {
	if a.Name() == b.Name() {
		return nil, fmt.Errorf("bridges must differ: both columns would be named %q", a.Name())
	}
	opts = opts.withDefaults()
	if err := opts.Schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}

	rng := NewRand(opts.Seed)
	sizes := opts.Schedule.Sizes()
	table := &Table{NameA: a.Name(), NameB: b.Name(), Rows: make([]Row, 0, len(sizes))}

	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		list := Fixture(rng, size)
		rev := Reverse(list)

		elapsedA, err := sample(opts, a, list, rev)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}
		elapsedB, err := sample(opts, b, list, rev)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}

		opts.Logger.Debug("timed concat",
			"size", size,
			a.Name(), elapsedA,
			b.Name(), elapsedB,
		)
		table.Rows = append(table.Rows, Row{Size: size, ElapsedA: elapsedA, ElapsedB: elapsedB})
	}

	opts.Logger.Info("benchmark complete", "sizes", len(sizes), "repeat", opts.Repeat)
	return table, nil
}

// sample returns the fastest of opts.Repeat timed concats on br.
func sample(opts Options, br bridge.Bridge, list, rev kval.List) (time.Duration, error) {
	var best time.Duration
	for i := 0; i < opts.Repeat; i++ {
		start := opts.Clock.Now()
		out, err := br.Concat(list, rev)
		end := opts.Clock.Now()
		if err != nil {
			return 0, fmt.Errorf("%s concat failed: %w", br.Name(), err)
		}
		if n := kval.Len(out); n != list.Len()+rev.Len() {
			return 0, fmt.Errorf("%s concat returned %d elements, expected %d", br.Name(), n, list.Len()+rev.Len())
		}

		elapsed := end - start
		if elapsed < 0 {
			elapsed = 0
		}
		if i == 0 || elapsed < best {
			best = elapsed
		}
	}
	return best, nil
}
