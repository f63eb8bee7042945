package kval

import (
	"fmt"

	"github.com/google/uuid"
)

// List is a homogeneous list: every element has the declared Type.
//
// The backing slice uses the Go type of the storage class
// ([]bool, []uuid.UUID, []byte, []int16, []int32, []int64, []float32,
// []float64 or []string). Accessors return the backing slice directly;
// callers must treat it as read-only.
type List struct {
	typ  Type
	data any
	dom  *Domain // enum lists only, may be nil
}

func (List) kval() {}

// Code returns the positive type code.
func (l List) Code() int8 { return int8(l.typ) }

// Type returns the declared element type.
func (l List) Type() Type { return l.typ }

// Domain returns the enumeration domain of an enum list, or nil.
func (l List) Domain() *Domain { return l.dom }

// Len returns the number of elements.
func (l List) Len() int { return sliceLen(l.data) }

// Data returns the backing slice.
func (l List) Data() any { return l.data }

func (l List) Bools() []bool { v, _ := l.data.([]bool); return v }
func (l List) GUIDs() []uuid.UUID { v, _ := l.data.([]uuid.UUID); return v }
func (l List) Bytes() []byte { v, _ := l.data.([]byte); return v }
func (l List) Int16s() []int16 { v, _ := l.data.([]int16); return v }
func (l List) Int32s() []int32 { v, _ := l.data.([]int32); return v }
func (l List) Int64s() []int64 { v, _ := l.data.([]int64); return v }
func (l List) Float32s() []float32 { v, _ := l.data.([]float32); return v }
func (l List) Float64s() []float64 { v, _ := l.data.([]float64); return v }
func (l List) Strings() []string { v, _ := l.data.([]string); return v }

// At returns element i as an atom of the list's type.
func (l List) At(i int) Atom {
	return Atom{typ: l.typ, v: sliceAt(l.data, i), dom: l.dom}
}

// Clone returns a list with its own backing array.
func (l List) Clone() List {
	return List{typ: l.typ, data: appendFresh(l.data, emptySlice(l.typ.Class())), dom: l.dom}
}

// NewList wraps data as a list of type t. data must be a slice of the
// storage class of t; it is not copied.
func NewList(t Type, data any) (List, error) {
	if !t.Valid() {
		return List{}, fmt.Errorf("unknown type code %d", int8(t))
	}
	if data == nil {
		data = emptySlice(t.Class())
	}
	if !sliceMatches(t.Class(), data) {
		return List{}, fmt.Errorf("data %T does not match %s storage", data, t.Class())
	}
	return List{typ: t, data: data}, nil
}

// MustList is NewList for fixtures; it panics on a storage mismatch.
func MustList(t Type, data any) List {
	l, err := NewList(t, data)
	if err != nil {
		panic(err)
	}
	return l
}

// ListOf collects atoms of type t into a list.
func ListOf(t Type, atoms ...Atom) (List, error) {
	if !t.Valid() {
		return List{}, fmt.Errorf("unknown type code %d", int8(t))
	}
	data := emptySlice(t.Class())
	var dom *Domain
	for i, a := range atoms {
		if a.typ != t {
			return List{}, fmt.Errorf("element %d: %s atom in %s list", i, a.typ, t)
		}
		if t == TypeEnum {
			if dom == nil {
				dom = a.dom
			} else if a.dom != nil && !sameDomain(dom, a.dom) {
				return List{}, fmt.Errorf("element %d: enum domain %s differs from %s", i, a.dom.name, dom.name)
			}
		}
		data = appendOne(data, a.v)
	}
	return List{typ: t, data: data, dom: dom}, nil
}

func Bools(v ...bool) List { return List{typ: TypeBool, data: copyOf(v)} }
func GUIDs(v ...uuid.UUID) List { return List{typ: TypeGUID, data: copyOf(v)} }
func Bytes(v ...byte) List { return List{typ: TypeByte, data: copyOf(v)} }
func Shorts(v ...int16) List { return List{typ: TypeShort, data: copyOf(v)} }
func Ints(v ...int32) List { return List{typ: TypeInt, data: copyOf(v)} }
func Longs(v ...int64) List { return List{typ: TypeLong, data: copyOf(v)} }
func Reals(v ...float32) List { return List{typ: TypeReal, data: copyOf(v)} }
func Floats(v ...float64) List { return List{typ: TypeFloat, data: copyOf(v)} }
func Symbols(v ...string) List { return List{typ: TypeSymbol, data: copyOf(v)} }

// String builds a char list.
func String(s string) List { return List{typ: TypeChar, data: []byte(s)} }

// EnumsOf builds an enum list over d.
func EnumsOf(d *Domain, idx ...int64) List {
	return List{typ: TypeEnum, data: copyOf(idx), dom: d}
}

func copyOf[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)
	return out
}

func emptySlice(c Class) any {
	switch c {
	case ClassBool:
		return []bool{}
	case ClassGUID:
		return []uuid.UUID{}
	case ClassByte, ClassChar:
		return []byte{}
	case ClassShort:
		return []int16{}
	case ClassInt:
		return []int32{}
	case ClassLong:
		return []int64{}
	case ClassReal:
		return []float32{}
	case ClassFloat:
		return []float64{}
	case ClassSymbol:
		return []string{}
	}
	return nil
}

func sliceMatches(c Class, data any) bool {
	switch data.(type) {
	case []bool:
		return c == ClassBool
	case []uuid.UUID:
		return c == ClassGUID
	case []byte:
		return c == ClassByte || c == ClassChar
	case []int16:
		return c == ClassShort
	case []int32:
		return c == ClassInt
	case []int64:
		return c == ClassLong
	case []float32:
		return c == ClassReal
	case []float64:
		return c == ClassFloat
	case []string:
		return c == ClassSymbol
	}
	return false
}

func sliceLen(data any) int {
	switch s := data.(type) {
	case []bool:
		return len(s)
	case []uuid.UUID:
		return len(s)
	case []byte:
		return len(s)
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []int64:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	case []string:
		return len(s)
	}
	return 0
}

func sliceAt(data any, i int) any {
	switch s := data.(type) {
	case []bool:
		return s[i]
	case []uuid.UUID:
		return s[i]
	case []byte:
		return s[i]
	case []int16:
		return s[i]
	case []int32:
		return s[i]
	case []int64:
		return s[i]
	case []float32:
		return s[i]
	case []float64:
		return s[i]
	case []string:
		return s[i]
	}
	panic(fmt.Sprintf("kval: unsupported list storage %T", data))
}

func appendOne(data any, v any) any {
	switch s := data.(type) {
	case []bool:
		return append(s, v.(bool))
	case []uuid.UUID:
		return append(s, v.(uuid.UUID))
	case []byte:
		return append(s, v.(byte))
	case []int16:
		return append(s, v.(int16))
	case []int32:
		return append(s, v.(int32))
	case []int64:
		return append(s, v.(int64))
	case []float32:
		return append(s, v.(float32))
	case []float64:
		return append(s, v.(float64))
	case []string:
		return append(s, v.(string))
	}
	panic(fmt.Sprintf("kval: unsupported list storage %T", data))
}

// joinFresh returns a new slice holding a then b. Neither input is written.
func joinFresh[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// appendFresh joins two slices of the same storage into a new backing array.
// The caller guarantees matching storage.
func appendFresh(a, b any) any {
	switch s := a.(type) {
	case []bool:
		return joinFresh(s, b.([]bool))
	case []uuid.UUID:
		return joinFresh(s, b.([]uuid.UUID))
	case []byte:
		return joinFresh(s, b.([]byte))
	case []int16:
		return joinFresh(s, b.([]int16))
	case []int32:
		return joinFresh(s, b.([]int32))
	case []int64:
		return joinFresh(s, b.([]int64))
	case []float32:
		return joinFresh(s, b.([]float32))
	case []float64:
		return joinFresh(s, b.([]float64))
	case []string:
		return joinFresh(s, b.([]string))
	}
	panic(fmt.Sprintf("kval: unsupported list storage %T", a))
}
