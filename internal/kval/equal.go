package kval

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally identical.
//
// The comparison is deep, order-sensitive and type-tag-sensitive:
// Long 1 is not Timestamp 1. Floats compare by bit pattern so the null
// NaN equals itself and 0.0 differs from -0.0.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Code() != b.Code() {
		return false
	}
	switch x := a.(type) {
	case Atom:
		y := b.(Atom)
		if x.typ == TypeEnum && !sameDomain(x.dom, y.dom) {
			return false
		}
		return payloadEqual(x.v, y.v)
	case List:
		y := b.(List)
		if x.typ == TypeEnum && !sameDomain(x.dom, y.dom) {
			return false
		}
		return listDataEqual(x.data, y.data)
	case Generic:
		y := b.(Generic)
		return slices.EqualFunc(x, y, Equal)
	case Unit:
		return true
	case Err:
		return x.Message == b.(Err).Message
	case Dict:
		y := b.(Dict)
		return Equal(x.keys, y.keys) && Equal(x.values, y.values)
	case Table:
		y := b.(Table)
		return Equal(x.dict, y.dict)
	}
	return false
}

func payloadEqual(a, b any) bool {
	switch x := a.(type) {
	case float32:
		y, ok := b.(float32)
		return ok && math.Float32bits(x) == math.Float32bits(y)
	case float64:
		y, ok := b.(float64)
		return ok && math.Float64bits(x) == math.Float64bits(y)
	}
	return a == b
}

func listDataEqual(a, b any) bool {
	switch x := a.(type) {
	case []float32:
		y, ok := b.([]float32)
		return ok && slices.EqualFunc(x, y, func(p, q float32) bool {
			return math.Float32bits(p) == math.Float32bits(q)
		})
	case []float64:
		y, ok := b.([]float64)
		return ok && slices.EqualFunc(x, y, func(p, q float64) bool {
			return math.Float64bits(p) == math.Float64bits(q)
		})
	}
	n := sliceLen(a)
	if n != sliceLen(b) {
		return false
	}
	for i := 0; i < n; i++ {
		if sliceAt(a, i) != sliceAt(b, i) {
			return false
		}
	}
	return true
}
