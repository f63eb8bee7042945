package bridge

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/kbridge/internal/kval"
)

// Exported symbol names.
const (
	SymConcat     = "concat"
	SymModifyLong = "modify_long_list_a_bit"
	printPrefix   = "print_"
)

// Names lists the bridges Open knows about.
func Names() []string { return []string{"native", "arrow"} }

// Open constructs the named bridge. Printer output goes to w.
func Open(name string, w io.Writer) (Bridge, error) {
	switch name {
	case "native":
		return NewNative(w), nil
	case "arrow":
		return NewArrow(w, nil), nil
	}
	return nil, kval.LoadFailure(name, fmt.Sprintf("unknown bridge %q", name))
}

// Symbols returns every exported symbol with its arity.
func Symbols() map[string]int {
	syms := map[string]int{SymConcat: 2, SymModifyLong: 1}
	for _, k := range PrintKinds() {
		syms[printPrefix+k] = 1
	}
	return syms
}

// Resolve looks up an exported symbol on b. The arity must match the
// symbol's declaration; any failure is a load error.
func Resolve(b Bridge, symbol string, arity int) (Func, error) {
	want, ok := Symbols()[symbol]
	if !ok {
		return nil, kval.LoadFailure(symbol, fmt.Sprintf("symbol not found in %s bridge", b.Name()))
	}
	if arity != want {
		return nil, kval.LoadFailure(symbol, fmt.Sprintf("arity %d, expected %d", arity, want))
	}

	var fn func(args []kval.Value) (kval.Value, error)
	switch {
	case symbol == SymConcat:
		fn = func(args []kval.Value) (kval.Value, error) { return b.Concat(args[0], args[1]) }
	case symbol == SymModifyLong:
		fn = func(args []kval.Value) (kval.Value, error) { return b.ModifyLongList(args[0]) }
	default:
		kind := strings.TrimPrefix(symbol, printPrefix)
		fn = func(args []kval.Value) (kval.Value, error) { return b.Print(kind, args[0]) }
	}

	return func(args ...kval.Value) (kval.Value, error) {
		if len(args) != want {
			return nil, kval.TypeMismatch(fmt.Sprintf("%s takes %d arguments, got %d", symbol, want, len(args)))
		}
		return fn(args)
	}, nil
}
