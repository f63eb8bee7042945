package kval

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// typeSuffix is the letter q appends to disambiguate atoms of t.
var typeSuffix = map[Type]string{
	TypeBool: "b", TypeGUID: "g", TypeShort: "h", TypeInt: "i", TypeLong: "j",
	TypeReal: "e", TypeFloat: "f", TypeChar: "c", TypeSymbol: "s",
	TypeTimestamp: "p", TypeMonth: "m", TypeDate: "d", TypeDatetime: "z",
	TypeTimespan: "n", TypeMinute: "u", TypeSecond: "v", TypeTime: "t",
}

// Format renders v in the host's console display form:
// 1 2 3, `a`b, "abc", 0N, 0Wi, (::;`metals;316), `d$`x, k!v, 'err.
func Format(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func (a Atom) String() string    { return Format(a) }
func (l List) String() string    { return Format(l) }
func (g Generic) String() string { return Format(g) }
func (Unit) String() string      { return "::" }
func (d Dict) String() string    { return Format(d) }
func (t Table) String() string   { return Format(t) }
func (e Err) String() string     { return Format(e) }

func writeValue(sb *strings.Builder, v Value) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("<nil>")
	case Atom:
		sb.WriteString(formatAtom(x))
	case List:
		writeList(sb, x)
	case Generic:
		switch len(x) {
		case 0:
			sb.WriteString("()")
		case 1:
			sb.WriteByte(',')
			writeValue(sb, x[0])
		default:
			sb.WriteByte('(')
			for i, e := range x {
				if i > 0 {
					sb.WriteByte(';')
				}
				writeValue(sb, e)
			}
			sb.WriteByte(')')
		}
	case Unit:
		sb.WriteString("::")
	case Dict:
		writeValue(sb, x.keys)
		sb.WriteByte('!')
		writeValue(sb, x.values)
	case Table:
		sb.WriteByte('+')
		writeValue(sb, x.dict)
	case Err:
		sb.WriteByte('\'')
		sb.WriteString(x.Message)
	}
}

func formatAtom(a Atom) string {
	switch a.typ {
	case TypeBool:
		if a.v.(bool) {
			return "1b"
		}
		return "0b"
	case TypeGUID:
		g := a.v.(uuid.UUID)
		if g == uuid.Nil {
			return "0Ng"
		}
		return g.String()
	case TypeByte:
		return "0x" + hex.EncodeToString([]byte{a.v.(byte)})
	case TypeChar:
		return quote([]byte{a.v.(byte)})
	case TypeSymbol:
		return "`" + a.v.(string)
	case TypeEnum:
		return enumPrefix(a.dom) + "`" + enumSymbol(a.dom, a.v.(int64))
	case TypeLong:
		return elem(a.typ, a.v)
	case TypeShort, TypeInt, TypeReal:
		return elem(a.typ, a.v) + typeSuffix[a.typ]
	case TypeFloat:
		s := elem(a.typ, a.v)
		if isWhole(s) {
			s += "f"
		}
		return s
	}
	// temporal: sentinels need the suffix, values are self-describing
	s := elem(a.typ, a.v)
	if strings.Contains(s, "0N") || strings.Contains(s, "0W") {
		return s + typeSuffix[a.typ]
	}
	return s
}

func writeList(sb *strings.Builder, l List) {
	n := l.Len()
	switch {
	case l.typ == TypeChar:
		if n == 1 {
			sb.WriteByte(',')
		}
		sb.WriteString(quote(l.Bytes()))
		return
	case n == 0:
		sb.WriteString("`" + l.typ.String() + "$()")
		return
	case n == 1:
		sb.WriteByte(',')
		sb.WriteString(formatAtom(l.At(0)))
		return
	}
	switch l.typ {
	case TypeBool:
		for _, b := range l.Bools() {
			if b {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('b')
	case TypeByte:
		sb.WriteString("0x")
		sb.WriteString(hex.EncodeToString(l.Bytes()))
	case TypeSymbol:
		for _, s := range l.Strings() {
			sb.WriteString("`" + s)
		}
	case TypeEnum:
		sb.WriteString(enumPrefix(l.dom))
		for _, i := range l.Int64s() {
			sb.WriteString("`" + enumSymbol(l.dom, i))
		}
	default:
		whole := true
		for i := 0; i < n; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			s := elem(l.typ, sliceAt(l.data, i))
			whole = whole && isWhole(s)
			sb.WriteString(s)
		}
		switch l.typ {
		case TypeShort, TypeInt, TypeReal:
			sb.WriteString(typeSuffix[l.typ])
		case TypeFloat:
			if whole {
				sb.WriteByte('f')
			}
		}
	}
}

// elem renders one payload without a type suffix.
func elem(t Type, v any) string {
	switch x := v.(type) {
	case uuid.UUID:
		if x == uuid.Nil {
			return "0Ng"
		}
		return x.String()
	case int16:
		return intElem(int64(x), int64(ShortNull), int64(ShortInf), func() string { return formatInt(t, int64(x)) })
	case int32:
		return intElem(int64(x), int64(IntNull), int64(IntInf), func() string { return formatInt(t, int64(x)) })
	case int64:
		return intElem(x, LongNull, LongInf, func() string { return formatInt(t, x) })
	case float32:
		return floatElem(float64(x), t, 32)
	case float64:
		return floatElem(x, t, 64)
	}
	return ""
}

func intElem(n, null, inf int64, body func() string) string {
	switch n {
	case null:
		return "0N"
	case inf:
		return "0W"
	case -inf:
		return "-0W"
	}
	return body()
}

func formatInt(t Type, n int64) string {
	switch t {
	case TypeTimestamp:
		return formatTimestamp(n)
	case TypeTimespan:
		return formatTimespan(n)
	case TypeMonth:
		return formatMonth(int32(n))
	case TypeDate:
		return formatDate(int32(n))
	case TypeMinute:
		return formatMinute(int32(n))
	case TypeSecond:
		return formatSecond(int32(n))
	case TypeTime:
		return formatTime(int32(n))
	}
	return strconv.FormatInt(n, 10)
}

func floatElem(f float64, t Type, bits int) string {
	switch {
	case math.IsNaN(f):
		if t == TypeFloat {
			return "0n"
		}
		return "0N"
	case math.IsInf(f, 1):
		if t == TypeFloat {
			return "0w"
		}
		return "0W"
	case math.IsInf(f, -1):
		if t == TypeFloat {
			return "-0w"
		}
		return "-0W"
	}
	if t == TypeDatetime {
		return formatDatetime(f)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// isWhole reports whether a rendered float needs an "f" to stay a float.
func isWhole(s string) bool {
	return !strings.ContainsAny(s, ".eEnNwW")
}

func quote(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

func enumPrefix(d *Domain) string {
	if d == nil {
		return "`$"
	}
	return "`" + d.name + "$"
}

func enumSymbol(d *Domain, idx int64) string {
	s, _ := d.Symbol(idx)
	return s
}
