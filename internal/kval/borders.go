package kval

import (
	"math"

	"github.com/google/uuid"
)

// Sentinel payloads by storage class.
const (
	ShortNull   int16 = math.MinInt16
	ShortInf    int16 = math.MaxInt16
	ShortNegInf int16 = -math.MaxInt16

	IntNull   int32 = math.MinInt32
	IntInf    int32 = math.MaxInt32
	IntNegInf int32 = -math.MaxInt32

	LongNull   int64 = math.MinInt64
	LongInf    int64 = math.MaxInt64
	LongNegInf int64 = -math.MaxInt64

	RealNullBits  uint32 = 0xFFC00000
	FloatNullBits uint64 = 0xFFF8000000000000

	CharNull byte = ' '
)

// RealNull returns the host's real null NaN.
func RealNull() float32 { return math.Float32frombits(RealNullBits) }

// FloatNull returns the host's float null NaN.
func FloatNull() float64 { return math.Float64frombits(FloatNullBits) }

// HasInfinity reports whether t has +inf and -inf sentinels.
// Enum shares Long storage but indexes a domain, so it has none.
func HasInfinity(t Type) bool {
	if t == TypeEnum {
		return false
	}
	switch t.Class() {
	case ClassShort, ClassInt, ClassLong, ClassReal, ClassFloat:
		return true
	}
	return false
}

// Null returns the null sentinel atom of t. An unknown type yields Unit.
func Null(t Type) Value {
	if !t.Valid() {
		return Unit{}
	}
	var v any
	switch t.Class() {
	case ClassBool:
		v = false
	case ClassGUID:
		v = uuid.Nil
	case ClassByte:
		v = byte(0)
	case ClassShort:
		v = ShortNull
	case ClassInt:
		v = IntNull
	case ClassLong:
		v = LongNull
	case ClassReal:
		v = RealNull()
	case ClassFloat:
		v = FloatNull()
	case ClassChar:
		v = CharNull
	case ClassSymbol:
		v = ""
	}
	return Atom{typ: t, v: v}
}

// Borders returns the null, +inf and -inf atoms of an ordered type.
// ok is false for types without infinities.
func Borders(t Type) (null, posInf, negInf Value, ok bool) {
	if !HasInfinity(t) {
		return nil, nil, nil, false
	}
	null = Null(t)
	switch t.Class() {
	case ClassShort:
		return null, Atom{typ: t, v: ShortInf}, Atom{typ: t, v: ShortNegInf}, true
	case ClassInt:
		return null, Atom{typ: t, v: IntInf}, Atom{typ: t, v: IntNegInf}, true
	case ClassLong:
		return null, Atom{typ: t, v: LongInf}, Atom{typ: t, v: LongNegInf}, true
	case ClassReal:
		return null, Atom{typ: t, v: float32(math.Inf(1))}, Atom{typ: t, v: float32(math.Inf(-1))}, true
	case ClassFloat:
		return null, Atom{typ: t, v: math.Inf(1)}, Atom{typ: t, v: math.Inf(-1)}, true
	}
	return nil, nil, nil, false
}

// Border is one row of the sentinel table.
type Border struct {
	Type   Type
	Null   Value
	PosInf Value // nil when the type has no infinities
	NegInf Value
}

// AllBorders returns the sentinel row of every primitive type in code order.
func AllBorders() []Border {
	out := make([]Border, 0, len(allTypes))
	for _, t := range allTypes {
		b := Border{Type: t, Null: Null(t)}
		if _, pos, neg, ok := Borders(t); ok {
			b.PosInf, b.NegInf = pos, neg
		}
		out = append(out, b)
	}
	return out
}

// IsNull reports whether v is the null sentinel of its type.
// Unit counts as null; an empty char list is the null string.
func IsNull(v Value) bool {
	switch x := v.(type) {
	case Unit:
		return true
	case List:
		return x.typ == TypeChar && x.Len() == 0
	case Atom:
		return Equal(x, Null(x.typ))
	}
	return false
}

// IsInf reports whether v is the +inf or -inf sentinel of its type.
func IsInf(v Value) bool {
	a, ok := v.(Atom)
	if !ok {
		return false
	}
	_, pos, neg, ok := Borders(a.typ)
	if !ok {
		return false
	}
	return Equal(a, pos) || Equal(a, neg)
}
