// Package bridge defines the foreign-function surface under test and its
// implementations.
//
// A Bridge exposes the exported symbols of a value-model bridge: list
// concatenation, the bounded-mutation probe and the printer family.
// Two independent adapters exist so the harnesses can compare them:
//   - native: the kval engine itself
//   - arrow: columnar buffers built and concatenated with Apache Arrow
//
// Bridges are constructed once with Open and never swapped mid-run.
package bridge

import (
	"github.com/roach88/kbridge/internal/kval"
)

// Bridge is one implementation of the exported symbol set.
// Every call is synchronous; inputs are borrowed for the duration of the
// call and never written.
type Bridge interface {
	// Name identifies the implementation ("native", "arrow").
	Name() string

	// Concat joins two values left then right.
	Concat(left, right kval.Value) (kval.Value, error)

	// ModifyLongList returns a copy of a Long list with element 1 overwritten.
	ModifyLongList(v kval.Value) (kval.Value, error)

	// Print writes "<kind>: <display>" for an atom of the named kind and
	// returns Unit.
	Print(kind string, v kval.Value) (kval.Value, error)
}

// Func is a resolved exported symbol.
type Func func(args ...kval.Value) (kval.Value, error)
