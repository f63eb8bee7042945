package kval

import (
	"fmt"

	"github.com/google/uuid"
)

// Value is a sealed interface over every shape the bridge exchanges.
// Only Atom, List, Generic, Unit, Dict, Table and Err implement it.
type Value interface {
	// Code returns the host type code (negative for atoms).
	Code() int8
	kval() // Sealed
}

// Atom is a single scalar of a primitive Type.
//
// The payload is held in the Go type of the storage class:
// bool, uuid.UUID, byte, int16, int32, int64, float32, float64,
// byte (char) or string (symbol).
type Atom struct {
	typ Type
	v   any
	dom *Domain // enum atoms only
}

func (Atom) kval() {}

// Code returns the negated type code.
func (a Atom) Code() int8 { return -int8(a.typ) }

// Type returns the declared type of the atom.
func (a Atom) Type() Type { return a.typ }

// Payload returns the raw storage-class value.
func (a Atom) Payload() any { return a.v }

// Domain returns the enumeration domain of an enum atom, or nil.
func (a Atom) Domain() *Domain { return a.dom }

// Int64 widens any integer-class payload (byte, short, int, long, char).
func (a Atom) Int64() int64 {
	switch v := a.v.(type) {
	case byte:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

// Float64 widens a real or float payload.
func (a Atom) Float64() float64 {
	switch v := a.v.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// NewAtom builds an atom of type t from a payload of the matching storage class.
func NewAtom(t Type, v any) (Atom, error) {
	if !t.Valid() {
		return Atom{}, fmt.Errorf("unknown type code %d", int8(t))
	}
	if !payloadMatches(t.Class(), v) {
		return Atom{}, fmt.Errorf("payload %T does not match %s storage", v, t.Class())
	}
	return Atom{typ: t, v: v}, nil
}

func payloadMatches(c Class, v any) bool {
	switch v.(type) {
	case bool:
		return c == ClassBool
	case uuid.UUID:
		return c == ClassGUID
	case byte:
		return c == ClassByte || c == ClassChar
	case int16:
		return c == ClassShort
	case int32:
		return c == ClassInt
	case int64:
		return c == ClassLong
	case float32:
		return c == ClassReal
	case float64:
		return c == ClassFloat
	case string:
		return c == ClassSymbol
	}
	return false
}

func Bool(b bool) Atom { return Atom{typ: TypeBool, v: b} }
func GUID(g uuid.UUID) Atom { return Atom{typ: TypeGUID, v: g} }
func Byte(b byte) Atom { return Atom{typ: TypeByte, v: b} }
func Short(n int16) Atom { return Atom{typ: TypeShort, v: n} }
func Int(n int32) Atom { return Atom{typ: TypeInt, v: n} }
func Long(n int64) Atom { return Atom{typ: TypeLong, v: n} }
func Real(f float32) Atom { return Atom{typ: TypeReal, v: f} }
func Float(f float64) Atom { return Atom{typ: TypeFloat, v: f} }
func Char(c byte) Atom { return Atom{typ: TypeChar, v: c} }
func Symbol(s string) Atom { return Atom{typ: TypeSymbol, v: s} }
func Timestamp(ns int64) Atom { return Atom{typ: TypeTimestamp, v: ns} }
func Month(m int32) Atom { return Atom{typ: TypeMonth, v: m} }
func Date(d int32) Atom { return Atom{typ: TypeDate, v: d} }
func Datetime(d float64) Atom { return Atom{typ: TypeDatetime, v: d} }
func Timespan(ns int64) Atom { return Atom{typ: TypeTimespan, v: ns} }
func Minute(m int32) Atom { return Atom{typ: TypeMinute, v: m} }
func Second(s int32) Atom { return Atom{typ: TypeSecond, v: s} }
func Time(ms int32) Atom { return Atom{typ: TypeTime, v: ms} }

// EnumOf indexes into d. The index is not range checked; use Enumerate
// when the symbol is known.
func EnumOf(d *Domain, idx int64) Atom {
	return Atom{typ: TypeEnum, v: idx, dom: d}
}

// Domain is a named, ordered sequence of symbols that enum values index into.
type Domain struct {
	name string
	syms []string
}

// NewDomain creates a domain. The symbols are copied.
func NewDomain(name string, syms ...string) *Domain {
	cp := make([]string, len(syms))
	copy(cp, syms)
	return &Domain{name: name, syms: cp}
}

func (d *Domain) Name() string { return d.name }
func (d *Domain) Len() int { return len(d.syms) }

// Symbol returns the symbol at idx.
func (d *Domain) Symbol(idx int64) (string, bool) {
	if d == nil || idx < 0 || idx >= int64(len(d.syms)) {
		return "", false
	}
	return d.syms[idx], true
}

// Index returns the position of sym in the domain.
func (d *Domain) Index(sym string) (int64, bool) {
	if d == nil {
		return 0, false
	}
	for i, s := range d.syms {
		if s == sym {
			return int64(i), true
		}
	}
	return 0, false
}

// Enumerate returns the enum atom for sym within d.
func Enumerate(d *Domain, sym string) (Atom, error) {
	if d == nil {
		return Atom{}, fmt.Errorf("enumerate %q: no domain", sym)
	}
	idx, ok := d.Index(sym)
	if !ok {
		return Atom{}, fmt.Errorf("enumerate %q: not in domain %s", sym, d.name)
	}
	return EnumOf(d, idx), nil
}

// sameDomain compares domains by identity, then by name.
func sameDomain(a, b *Domain) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.name == b.name
}

// Generic is a list whose elements may be of any kind.
type Generic []Value

func (Generic) kval() {}

// Code returns the generic list code (0).
func (Generic) Code() int8 { return CodeGeneric }

// GenericOf builds a generic list from its elements.
func GenericOf(vals ...Value) Generic {
	out := make(Generic, len(vals))
	copy(out, vals)
	return out
}

// Unit is the generic null (::), distinct from every typed null.
type Unit struct{}

func (Unit) kval() {}

// Code returns the unit code (101).
func (Unit) Code() int8 { return CodeUnit }

// Err is an error value handed back to the host instead of raising.
type Err struct {
	Message string
}

func (Err) kval() {}

// Code returns the error code (-128).
func (Err) Code() int8 { return CodeError }
