package harness

import (
	"fmt"

	"github.com/roach88/kbridge/internal/bridge"
	"github.com/roach88/kbridge/internal/kval"
)

// AssertEqual records whether actual produces a value equal to expected.
// A raised error or a panic is a failure naming the diagnostic.
func AssertEqual(l *Ledger, label string, actual func() (kval.Value, error), expected kval.Value) bool {
	got, err := guard(actual)
	switch {
	case err != nil:
		l.Record(label, false, fmt.Sprintf("raised %q, expected %s", kval.Diagnostic(err), kval.Format(expected)))
		return false
	case !kval.Equal(got, expected):
		l.Record(label, false, fmt.Sprintf("got %s, expected %s", kval.Format(got), kval.Format(expected)))
		return false
	}
	l.Record(label, true, "")
	return true
}

// AssertError records whether fn fails with exactly expectedMessage.
// Success, or failure with any other message, is recorded as a failure.
func AssertError(l *Ledger, label string, fn bridge.Func, args []kval.Value, expectedMessage string) bool {
	got, err := guard(func() (kval.Value, error) { return fn(args...) })
	if err == nil {
		l.Record(label, false, fmt.Sprintf("returned %s, expected error %q", kval.Format(got), expectedMessage))
		return false
	}
	if msg := kval.Diagnostic(err); msg != expectedMessage {
		l.Record(label, false, fmt.Sprintf("raised %q, expected %q", msg, expectedMessage))
		return false
	}
	l.Record(label, true, "")
	return true
}

// guard runs fn, converting a panic into an error.
func guard(fn func() (kval.Value, error)) (v kval.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("bridge panic: %v", r)
		}
	}()
	return fn()
}
