package kval

import "fmt"

// Type identifies a primitive element type using the host's type codes.
// Atoms report the negated code, simple lists the positive code.
type Type int8

const (
	TypeBool      Type = 1
	TypeGUID      Type = 2
	TypeByte      Type = 4
	TypeShort     Type = 5
	TypeInt       Type = 6
	TypeLong      Type = 7
	TypeReal      Type = 8
	TypeFloat     Type = 9
	TypeChar      Type = 10
	TypeSymbol    Type = 11
	TypeTimestamp Type = 12
	TypeMonth     Type = 13
	TypeDate      Type = 14
	TypeDatetime  Type = 15
	TypeTimespan  Type = 16
	TypeMinute    Type = 17
	TypeSecond    Type = 18
	TypeTime      Type = 19
	TypeEnum      Type = 20
)

// Host codes for values that are not atoms or simple lists.
const (
	CodeGeneric int8 = 0
	CodeTable   int8 = 98
	CodeDict    int8 = 99
	CodeUnit    int8 = 101
	CodeError   int8 = -128
)

// Class is the physical storage of a Type.
// Temporal types share the storage of a numeric type but keep their own tag.
type Class int

const (
	ClassBool Class = iota
	ClassGUID
	ClassByte
	ClassShort
	ClassInt
	ClassLong
	ClassReal
	ClassFloat
	ClassChar
	ClassSymbol
)

type typeInfo struct {
	name  string
	class Class
}

var typeTable = map[Type]typeInfo{
	TypeBool:      {"bool", ClassBool},
	TypeGUID:      {"guid", ClassGUID},
	TypeByte:      {"byte", ClassByte},
	TypeShort:     {"short", ClassShort},
	TypeInt:       {"int", ClassInt},
	TypeLong:      {"long", ClassLong},
	TypeReal:      {"real", ClassReal},
	TypeFloat:     {"float", ClassFloat},
	TypeChar:      {"char", ClassChar},
	TypeSymbol:    {"symbol", ClassSymbol},
	TypeTimestamp: {"timestamp", ClassLong},
	TypeMonth:     {"month", ClassInt},
	TypeDate:      {"date", ClassInt},
	TypeDatetime:  {"datetime", ClassFloat},
	TypeTimespan:  {"timespan", ClassLong},
	TypeMinute:    {"minute", ClassInt},
	TypeSecond:    {"second", ClassInt},
	TypeTime:      {"time", ClassInt},
	TypeEnum:      {"enum", ClassLong},
}

// allTypes lists every Type in host code order.
var allTypes = []Type{
	TypeBool, TypeGUID, TypeByte, TypeShort, TypeInt, TypeLong, TypeReal,
	TypeFloat, TypeChar, TypeSymbol, TypeTimestamp, TypeMonth, TypeDate,
	TypeDatetime, TypeTimespan, TypeMinute, TypeSecond, TypeTime, TypeEnum,
}

// Types returns every primitive Type in host code order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether t is a known primitive type.
func (t Type) Valid() bool {
	_, ok := typeTable[t]
	return ok
}

// String returns the lowercase type name ("long", "symbol", ...).
func (t Type) String() string {
	if info, ok := typeTable[t]; ok {
		return info.name
	}
	return fmt.Sprintf("type(%d)", int8(t))
}

// Class returns the storage class of t.
func (t Type) Class() Class {
	return typeTable[t].class
}

// IsTemporal reports whether t is one of the date/time types.
func (t Type) IsTemporal() bool {
	switch t {
	case TypeTimestamp, TypeMonth, TypeDate, TypeDatetime, TypeTimespan,
		TypeMinute, TypeSecond, TypeTime:
		return true
	}
	return false
}

// ParseType looks up a Type by its lowercase name.
func ParseType(name string) (Type, bool) {
	for _, t := range allTypes {
		if typeTable[t].name == name {
			return t, true
		}
	}
	return 0, false
}

// String returns the name of the storage class.
func (c Class) String() string {
	switch c {
	case ClassBool:
		return "bool"
	case ClassGUID:
		return "guid"
	case ClassByte:
		return "byte"
	case ClassShort:
		return "short"
	case ClassInt:
		return "int"
	case ClassLong:
		return "long"
	case ClassReal:
		return "real"
	case ClassFloat:
		return "float"
	case ClassChar:
		return "char"
	case ClassSymbol:
		return "symbol"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}
