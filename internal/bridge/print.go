package bridge

import (
	"fmt"
	"io"
	"sort"

	"github.com/roach88/kbridge/internal/kval"
)

// printKinds maps each printer kind to the atom types it accepts.
// Base printers accept their whole storage class; temporal printers
// accept only their own type.
var printKinds = map[string][]kval.Type{
	"bool":      {kval.TypeBool},
	"guid":      {kval.TypeGUID},
	"byte":      {kval.TypeByte},
	"short":     {kval.TypeShort},
	"int":       {kval.TypeInt, kval.TypeMonth, kval.TypeDate, kval.TypeMinute, kval.TypeSecond, kval.TypeTime},
	"long":      {kval.TypeLong, kval.TypeTimestamp, kval.TypeTimespan},
	"real":      {kval.TypeReal},
	"float":     {kval.TypeFloat, kval.TypeDatetime},
	"char":      {kval.TypeChar},
	"symbol":    {kval.TypeSymbol},
	"string":    nil, // char list, handled separately
	"timestamp": {kval.TypeTimestamp},
	"month":     {kval.TypeMonth},
	"date":      {kval.TypeDate},
	"datetime":  {kval.TypeDatetime},
	"timespan":  {kval.TypeTimespan},
	"minute":    {kval.TypeMinute},
	"second":    {kval.TypeSecond},
	"time":      {kval.TypeTime},
	"enum":      {kval.TypeEnum},
}

// PrintKinds returns every printer kind in sorted order.
func PrintKinds() []string {
	kinds := make([]string, 0, len(printKinds))
	for k := range printKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// IsPrintKind reports whether kind names a printer.
func IsPrintKind(kind string) bool {
	_, ok := printKinds[kind]
	return ok
}

// Accepts reports whether the printer for kind accepts v.
func Accepts(kind string, v kval.Value) bool {
	if kind == "string" {
		l, ok := v.(kval.List)
		return ok && l.Type() == kval.TypeChar
	}
	a, ok := v.(kval.Atom)
	if !ok {
		return false
	}
	for _, t := range printKinds[kind] {
		if a.Type() == t {
			return true
		}
	}
	return false
}

// rejection is the diagnostic for a value the printer does not accept.
func rejection(kind string) string {
	switch kind[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "not an " + kind
	}
	return "not a " + kind
}

// printer is the printer family shared by both adapters.
type printer struct {
	w io.Writer
}

func (p printer) Print(kind string, v kval.Value) (kval.Value, error) {
	if !IsPrintKind(kind) {
		return nil, kval.LoadFailure("print_"+kind, "no such printer")
	}
	if !Accepts(kind, v) {
		return nil, kval.TypeMismatch(rejection(kind))
	}
	if _, err := fmt.Fprintf(p.w, "%s: %s\n", kind, kval.Format(v)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", kind, err)
	}
	return kval.Unit{}, nil
}
