package harness

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/roach88/kbridge/internal/kval"
)

// Literal is a typed value written in a suite file.
//
// Every literal is a single-key mapping naming its kind:
//
//	{long: [1, 2, 3]}          long list
//	{int: null}                typed null atom
//	{float: -inf}              typed infinity
//	{symbol: metals}           symbol atom
//	{string: clay}             char list
//	{date: 2000.01.02}         temporal atoms accept host notation or raw ints
//	{enum: {domain: sym, symbols: [a, b], value: a}}
//	{generic: [{unit: true}, {symbol: metals}]}
//	{dict: {keys: {symbol: [a]}, values: {long: [1]}}}
//	{table: {names: [a], columns: [{long: [1]}]}}
//	{error: type}
type Literal struct {
	Value kval.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeLiteral(node)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

func decodeLiteral(node *yaml.Node) (kval.Value, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return nil, fmt.Errorf("line %d: literal must be a single-key mapping like {long: 1}", node.Line)
	}
	kind := node.Content[0].Value
	body := node.Content[1]

	switch kind {
	case "unit":
		return kval.Unit{}, nil
	case "string":
		if body.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: string literal must be a scalar", body.Line)
		}
		return kval.String(body.Value), nil
	case "error":
		return kval.Err{Message: body.Value}, nil
	case "generic":
		return decodeGeneric(body)
	case "enum":
		return decodeEnum(body)
	case "dict":
		return decodeDict(body)
	case "table":
		return decodeTable(body)
	}

	t, ok := kval.ParseType(kind)
	if !ok {
		return nil, fmt.Errorf("line %d: unknown literal kind %q", node.Line, kind)
	}
	switch body.Kind {
	case yaml.ScalarNode:
		return decodeAtom(t, body)
	case yaml.SequenceNode:
		atoms := make([]kval.Atom, len(body.Content))
		for i, elem := range body.Content {
			a, err := decodeAtom(t, elem)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
			}
			atoms[i] = a
		}
		return kval.ListOf(t, atoms...)
	}
	return nil, fmt.Errorf("line %d: %s literal must be a scalar or a sequence", body.Line, kind)
}

func decodeGeneric(body *yaml.Node) (kval.Value, error) {
	if body.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: generic literal must be a sequence", body.Line)
	}
	out := make(kval.Generic, len(body.Content))
	for i, elem := range body.Content {
		v, err := decodeLiteral(elem)
		if err != nil {
			return nil, fmt.Errorf("generic[%d]: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

type enumLiteral struct {
	Domain  string   `yaml:"domain"`
	Symbols []string `yaml:"symbols"`
	Value   *string  `yaml:"value"`
	Values  []string `yaml:"values"`
}

func decodeEnum(body *yaml.Node) (kval.Value, error) {
	if err := checkKeys("enum", body, "domain", "symbols", "value", "values"); err != nil {
		return nil, err
	}
	var e enumLiteral
	if err := body.Decode(&e); err != nil {
		return nil, fmt.Errorf("line %d: enum literal: %w", body.Line, err)
	}
	if e.Domain == "" {
		return nil, fmt.Errorf("line %d: enum literal needs a domain name", body.Line)
	}
	d := kval.NewDomain(e.Domain, e.Symbols...)
	if e.Value != nil {
		return kval.Enumerate(d, *e.Value)
	}
	idx := make([]int64, len(e.Values))
	for i, sym := range e.Values {
		a, err := kval.Enumerate(d, sym)
		if err != nil {
			return nil, err
		}
		idx[i] = a.Int64()
	}
	return kval.EnumsOf(d, idx...), nil
}

type dictLiteral struct {
	Keys   Literal `yaml:"keys"`
	Values Literal `yaml:"values"`
}

func decodeDict(body *yaml.Node) (kval.Value, error) {
	if err := checkKeys("dict", body, "keys", "values"); err != nil {
		return nil, err
	}
	var d dictLiteral
	if err := body.Decode(&d); err != nil {
		return nil, fmt.Errorf("line %d: dict literal: %w", body.Line, err)
	}
	return kval.NewDict(d.Keys.Value, d.Values.Value)
}

type tableLiteral struct {
	Names   []string  `yaml:"names"`
	Columns []Literal `yaml:"columns"`
}

func decodeTable(body *yaml.Node) (kval.Value, error) {
	if err := checkKeys("table", body, "names", "columns"); err != nil {
		return nil, err
	}
	var tl tableLiteral
	if err := body.Decode(&tl); err != nil {
		return nil, fmt.Errorf("line %d: table literal: %w", body.Line, err)
	}
	cols := make(kval.Generic, len(tl.Columns))
	for i, c := range tl.Columns {
		cols[i] = c.Value
	}
	return kval.NewTable(kval.Symbols(tl.Names...), cols)
}

// checkKeys rejects a compound literal body with keys outside allowed.
// Node.Decode does not honour the suite decoder's KnownFields setting.
func checkKeys(kind string, body *yaml.Node, allowed ...string) error {
	if body.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s literal must be a mapping", body.Line, kind)
	}
	for i := 0; i < len(body.Content); i += 2 {
		key := body.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: field %s not found in %s literal", key.Line, key.Value, kind)
		}
	}
	return nil
}

// decodeAtom parses one scalar as an atom of type t.
func decodeAtom(t kval.Type, n *yaml.Node) (kval.Atom, error) {
	if n.Kind != yaml.ScalarNode {
		return kval.Atom{}, fmt.Errorf("line %d: %s element must be a scalar", n.Line, t)
	}
	s := n.Value

	if n.ShortTag() == "!!null" {
		return kval.Null(t).(kval.Atom), nil
	}
	// the only NaN a real or float carries is its null
	if c := t.Class(); (c == kval.ClassReal || c == kval.ClassFloat) && isNaN(s) {
		return kval.Null(t).(kval.Atom), nil
	}
	if sign, ok := infinity(s); ok && kval.HasInfinity(t) {
		_, pos, neg, _ := kval.Borders(t)
		if sign > 0 {
			return pos.(kval.Atom), nil
		}
		return neg.(kval.Atom), nil
	}

	a, err := parseScalar(t, s)
	if err != nil {
		return kval.Atom{}, fmt.Errorf("line %d: %s literal %q: %w", n.Line, t, s, err)
	}
	return a, nil
}

func infinity(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "inf", "+inf", ".inf", "+.inf", "0w":
		return 1, true
	case "-inf", "-.inf", "-0w":
		return -1, true
	}
	return 0, false
}

func isNaN(s string) bool {
	switch strings.ToLower(s) {
	case "nan", ".nan", "0n":
		return true
	}
	return false
}

func parseScalar(t kval.Type, s string) (kval.Atom, error) {
	switch t {
	case kval.TypeBool:
		switch s {
		case "true", "1b", "1":
			return kval.Bool(true), nil
		case "false", "0b", "0":
			return kval.Bool(false), nil
		}
		return kval.Atom{}, fmt.Errorf("not a boolean")
	case kval.TypeGUID:
		g, err := uuid.Parse(s)
		if err != nil {
			return kval.Atom{}, err
		}
		return kval.GUID(g), nil
	case kval.TypeByte:
		n, err := strconv.ParseUint(s, 0, 8)
		return kval.Byte(byte(n)), err
	case kval.TypeChar:
		if len(s) != 1 {
			return kval.Atom{}, fmt.Errorf("char literal must be one byte")
		}
		return kval.Char(s[0]), nil
	case kval.TypeSymbol:
		return kval.Symbol(s), nil
	case kval.TypeShort:
		n, err := strconv.ParseInt(s, 10, 16)
		return kval.Short(int16(n)), err
	case kval.TypeInt:
		n, err := strconv.ParseInt(s, 10, 32)
		return kval.Int(int32(n)), err
	case kval.TypeLong:
		n, err := strconv.ParseInt(s, 10, 64)
		return kval.Long(n), err
	case kval.TypeReal:
		f, err := strconv.ParseFloat(s, 32)
		return kval.Real(float32(f)), err
	case kval.TypeFloat:
		f, err := strconv.ParseFloat(s, 64)
		return kval.Float(f), err
	case kval.TypeDatetime:
		f, err := strconv.ParseFloat(s, 64)
		return kval.Datetime(f), err
	case kval.TypeDate:
		if d, err := time.Parse("2006.01.02", s); err == nil {
			return kval.DateAt(d), nil
		}
	case kval.TypeMonth:
		if m, err := time.Parse("2006.01", strings.TrimSuffix(s, "m")); err == nil {
			return kval.MonthAt(m), nil
		}
	case kval.TypeTimestamp:
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return kval.TimestampAt(ts), nil
		}
	}

	// remaining temporal types take their raw storage integer
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return kval.Atom{}, err
	}
	switch t.Class() {
	case kval.ClassInt:
		return kval.NewAtom(t, int32(n))
	case kval.ClassLong:
		return kval.NewAtom(t, n)
	}
	return kval.Atom{}, fmt.Errorf("unsupported literal type")
}
