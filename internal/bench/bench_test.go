package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/roach88/kbridge/internal/bridge"
	"github.com/roach88/kbridge/internal/kval"
	"github.com/roach88/kbridge/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSchedule_Sizes(t *testing.T) {
	tests := []struct {
		name  string
		sched Schedule
		want  []int
	}{
		{"default prefix", Schedule{Start: 4, Step: 1, Length: 3}, []int{16, 32, 64}},
		{"fractional step", Schedule{Start: 0, Step: 0.5, Length: 4}, []int{1, 2, 2, 3}},
		{"zero step", Schedule{Start: 3, Step: 0, Length: 2}, []int{8, 8}},
		{"empty", Schedule{Start: 4, Step: 1, Length: 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.sched.Sizes()); diff != "" {
				t.Errorf("Sizes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchedule_Default(t *testing.T) {
	sizes := DefaultSchedule().Sizes()
	require.Len(t, sizes, 16)
	assert.Equal(t, 16, sizes[0])
	assert.Equal(t, 1<<19, sizes[15])
	assert.NoError(t, DefaultSchedule().Validate())
}

func TestSchedule_Validate(t *testing.T) {
	for _, s := range []Schedule{
		{Start: 4, Step: 1, Length: 0},
		{Start: -1, Step: 1, Length: 2},
		{Start: 4, Step: -1, Length: 2},
		{Start: 4, Step: 1, Length: 40},
	} {
		assert.Error(t, s.Validate(), "%+v", s)
	}
}

func TestFixture_DeterministicPerSeed(t *testing.T) {
	a := Fixture(NewRand(7), 32)
	b := Fixture(NewRand(7), 32)
	c := Fixture(NewRand(8), 32)

	assert.Equal(t, kval.TypeLong, a.Type())
	assert.Equal(t, 32, a.Len())
	assert.True(t, kval.Equal(a, b))
	assert.False(t, kval.Equal(a, c))
}

func TestReverse(t *testing.T) {
	in := kval.Longs(1, 2, 3)
	out := Reverse(in)

	assert.True(t, kval.Equal(kval.Longs(3, 2, 1), out))
	assert.True(t, kval.Equal(kval.Longs(1, 2, 3), in), "input must not change")

	d := kval.NewDomain("d", "x", "y")
	assert.True(t, kval.Equal(kval.EnumsOf(d, 1, 0), Reverse(kval.EnumsOf(d, 0, 1))))
	assert.Equal(t, 0, Reverse(kval.Longs()).Len())
}

func openBoth(t *testing.T) (bridge.Bridge, bridge.Bridge) {
	t.Helper()
	a, err := bridge.Open("native", io.Discard)
	require.NoError(t, err)
	b, err := bridge.Open("arrow", io.Discard)
	require.NoError(t, err)
	return a, b
}

func TestRun_OneSamplePerSize(t *testing.T) {
	a, b := openBoth(t)
	sched := Schedule{Start: 2, Step: 1, Length: 4}

	table, err := Run(context.Background(), a, b, Options{
		Schedule: sched,
		Clock:    testutil.NewDeterministicClock(),
	})
	require.NoError(t, err)

	want := &Table{NameA: "native", NameB: "arrow", Rows: []Row{
		{Size: 4, ElapsedA: time.Microsecond, ElapsedB: time.Microsecond},
		{Size: 8, ElapsedA: time.Microsecond, ElapsedB: time.Microsecond},
		{Size: 16, ElapsedA: time.Microsecond, ElapsedB: time.Microsecond},
		{Size: 32, ElapsedA: time.Microsecond, ElapsedB: time.Microsecond},
	}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"size", "native", "arrow"}, table.Columns())
}

func TestRun_RepeatReadsClockPerSample(t *testing.T) {
	a, b := openBoth(t)
	clock := testutil.NewDeterministicClock()

	table, err := Run(context.Background(), a, b, Options{
		Schedule: Schedule{Start: 1, Step: 1, Length: 2},
		Repeat:   3,
		Clock:    clock,
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// two sizes, two bridges, three samples, two readings each
	assert.Equal(t, int64(2*2*3*2), clock.Current())
	for _, r := range table.Rows {
		assert.Equal(t, time.Microsecond, r.ElapsedA)
		assert.Equal(t, time.Microsecond, r.ElapsedB)
	}

	// a rewound clock reproduces the run exactly
	clock.Reset()
	again, err := Run(context.Background(), a, b, Options{
		Schedule: Schedule{Start: 1, Step: 1, Length: 2},
		Repeat:   3,
		Clock:    clock,
	})
	require.NoError(t, err)
	if diff := cmp.Diff(table, again); diff != "" {
		t.Errorf("rerun mismatch (-first +second):\n%s", diff)
	}
	assert.Equal(t, int64(2*2*3*2), clock.Current())
}

func TestRun_RejectsSameBridgeTwice(t *testing.T) {
	a, _ := openBoth(t)
	_, err := Run(context.Background(), a, a, Options{Schedule: Schedule{Start: 1, Step: 1, Length: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `both columns would be named "native"`)
}

func TestRun_RealClockIsNonNegative(t *testing.T) {
	a, b := openBoth(t)
	table, err := Run(context.Background(), a, b, Options{Schedule: Schedule{Start: 4, Step: 1, Length: 3}})
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	for _, r := range table.Rows {
		assert.GreaterOrEqual(t, r.ElapsedA, time.Duration(0))
		assert.GreaterOrEqual(t, r.ElapsedB, time.Duration(0))
	}
}

// failing is a bridge whose concat always fails.
type failing struct{ bridge.Bridge }

func (failing) Name() string { return "failing" }

func (failing) Concat(_, _ kval.Value) (kval.Value, error) {
	return nil, kval.TypeMismatch(kval.MsgConcatMismatch)
}

func TestRun_BridgeErrorAborts(t *testing.T) {
	a, _ := openBoth(t)
	_, err := Run(context.Background(), a, failing{}, Options{
		Schedule: Schedule{Start: 1, Step: 1, Length: 2},
		Clock:    testutil.NewDeterministicClock(),
	})
	require.Error(t, err)
	assert.True(t, kval.IsTypeMismatch(err))
	assert.Contains(t, err.Error(), "size 2")
}

func TestRun_InvalidSchedule(t *testing.T) {
	a, b := openBoth(t)
	_, err := Run(context.Background(), a, b, Options{Schedule: Schedule{Start: -2, Step: 1, Length: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}

func TestRun_Cancelled(t *testing.T) {
	a, b := openBoth(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, a, b, Options{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTable_Render(t *testing.T) {
	table := &Table{NameA: "native", NameB: "arrow", Rows: []Row{
		{Size: 16, ElapsedA: 1500 * time.Nanosecond, ElapsedB: 2 * time.Microsecond},
		{Size: 32, ElapsedA: 3 * time.Microsecond, ElapsedB: 4 * time.Microsecond},
	}}

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf))
	out := buf.String()

	for _, want := range []string{"size", "native", "arrow", "16", "1500", "2000", "32", "3000", "4000"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "|")
}

func TestTable_MarshalJSON(t *testing.T) {
	table := &Table{NameA: "native", NameB: "arrow", Rows: []Row{
		{Size: 16, ElapsedA: 10, ElapsedB: 20},
	}}

	data, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["size","native","arrow"],"rows":[[16,10,20]]}`, string(data))
}

func BenchmarkConcat(b *testing.B) {
	for _, name := range bridge.Names() {
		br, err := bridge.Open(name, io.Discard)
		if err != nil {
			b.Fatal(err)
		}
		for _, size := range []int{1 << 8, 1 << 14} {
			list := Fixture(NewRand(1), size)
			rev := Reverse(list)
			b.Run(name+"/"+strconv.Itoa(size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := br.Concat(list, rev); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
