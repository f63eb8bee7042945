package harness

import (
	"fmt"

	"github.com/roach88/kbridge/internal/bridge"
	"github.com/roach88/kbridge/internal/kval"
)

// BuiltinSuite returns the catalogue every bridge must pass: the
// concatenation rules, the mutation probe, and the printer family on
// every sentinel.
func BuiltinSuite() *Suite {
	s := &Suite{
		Name:        "builtin",
		Description: "value model conformance for concat, modify_long_list_a_bit and print_*",
	}
	s.Cases = append(s.Cases, concatCases()...)
	s.Cases = append(s.Cases, mutateCases()...)
	s.Cases = append(s.Cases, printCases()...)
	return s
}

func concatCases() []Case {
	metals := kval.GenericOf(kval.Unit{}, kval.Symbol("metals"), kval.Symbol("fire"))
	clay := kval.GenericOf(kval.String("clay"), kval.Long(316))

	return []Case{
		{
			Label:  "concat long lists",
			Call:   bridge.SymConcat,
			Args:   []kval.Value{kval.Longs(1, 2, 3), kval.Longs(4, 5)},
			Expect: kval.Longs(1, 2, 3, 4, 5),
		},
		{
			Label:  "concat symbol lists",
			Call:   bridge.SymConcat,
			Args:   []kval.Value{kval.Symbols("a", "b"), kval.Symbols("c")},
			Expect: kval.Symbols("a", "b", "c"),
		},
		{
			Label:  "concat generic lists",
			Call:   bridge.SymConcat,
			Args:   []kval.Value{metals, clay},
			Expect: kval.GenericOf(kval.Unit{}, kval.Symbol("metals"), kval.Symbol("fire"), kval.String("clay"), kval.Long(316)),
		},
		{
			Label:  "concat generic with unit",
			Call:   bridge.SymConcat,
			Args:   []kval.Value{metals, kval.Unit{}},
			Expect: metals,
		},
		{
			Label:  "concat keeps sentinels",
			Call:   bridge.SymConcat,
			Args:   []kval.Value{kval.Floats(kval.FloatNull()), kval.Floats(1.5)},
			Expect: kval.Floats(kval.FloatNull(), 1.5),
		},
		{
			Label: "concat long and int lists",
			Call:  bridge.SymConcat,
			Args:  []kval.Value{kval.Longs(1), kval.Ints(1)},
			Error: kval.MsgConcatMismatch,
		},
		{
			Label: "concat string and symbol list",
			Call:  bridge.SymConcat,
			Args:  []kval.Value{kval.String("clay"), kval.Symbols("clay")},
			Error: kval.MsgConcatMismatch,
		},
		{
			Label: "concat atom and list",
			Call:  bridge.SymConcat,
			Args:  []kval.Value{kval.Long(1), kval.Longs(2)},
			Error: kval.MsgConcatMismatch,
		},
	}
}

func mutateCases() []Case {
	return []Case{
		{
			Label:  "modify_long_list_a_bit",
			Call:   bridge.SymModifyLong,
			Args:   []kval.Value{kval.Longs(1, 2, 3)},
			Expect: kval.Longs(1, 30000, 3),
		},
		{
			Label: "modify_long_list_a_bit short list",
			Call:  bridge.SymModifyLong,
			Args:  []kval.Value{kval.Longs(1)},
			Error: kval.MsgListTooShort,
		},
		{
			Label: "modify_long_list_a_bit int list",
			Call:  bridge.SymModifyLong,
			Args:  []kval.Value{kval.Ints(1, 2, 3)},
			Error: kval.MsgInvalidType,
		},
	}
}

func printCases() []Case {
	var cases []Case
	accept := func(kind, what string, v kval.Value) {
		cases = append(cases, Case{
			Label:  fmt.Sprintf("print_%s %s", kind, what),
			Call:   "print_" + kind,
			Args:   []kval.Value{v},
			Expect: kval.Unit{},
		})
	}
	reject := func(kind string, v kval.Value, msg string) {
		cases = append(cases, Case{
			Label: fmt.Sprintf("print_%s rejects %s", kind, describe(v)),
			Call:  "print_" + kind,
			Args:  []kval.Value{v},
			Error: msg,
		})
	}

	for _, kind := range bridge.PrintKinds() {
		switch kind {
		case "string":
			accept(kind, "null", kval.String(""))
			accept(kind, "value", kval.String("clay"))
			continue
		case "enum":
			accept(kind, "value", kval.EnumOf(kval.NewDomain("sym", "metals", "fire"), 1))
			continue
		}
		t, _ := kval.ParseType(kind)
		accept(kind, "null", kval.Null(t))
		if _, pos, neg, ok := kval.Borders(t); ok {
			accept(kind, "+inf", pos)
			accept(kind, "-inf", neg)
		}
	}

	for _, t := range []kval.Type{kval.TypeMonth, kval.TypeDate, kval.TypeMinute, kval.TypeSecond, kval.TypeTime} {
		accept("int", t.String(), kval.Null(t))
	}
	accept("long", "timestamp", kval.Null(kval.TypeTimestamp))
	accept("long", "timespan", kval.Null(kval.TypeTimespan))
	accept("float", "datetime", kval.Null(kval.TypeDatetime))

	reject("int", kval.Long(1), "not an int")
	reject("int", kval.Symbol("metals"), "not an int")
	reject("enum", kval.Symbol("metals"), "not an enum")
	reject("long", kval.Int(1), "not a long")
	reject("date", kval.Int(1), "not a date")
	reject("string", kval.Symbol("clay"), "not a string")
	return cases
}

func describe(v kval.Value) string {
	if a, ok := v.(kval.Atom); ok {
		return a.Type().String()
	}
	return kval.Format(v)
}
