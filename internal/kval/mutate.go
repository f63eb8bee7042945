package kval

// ProbeValue is written at index 1 by ModifyLongListABit.
const ProbeValue int64 = 30000

// ModifyLongListABit returns a copy of a Long list with element 1 set to
// ProbeValue. The input must be a Long list of at least two elements;
// its backing array is never written.
func ModifyLongListABit(v Value) (Value, error) {
	l, ok := v.(List)
	if !ok || l.typ != TypeLong {
		return nil, TypeMismatch(MsgInvalidType)
	}
	if l.Len() < 2 {
		return nil, Precondition(MsgListTooShort)
	}
	out := l.Clone()
	out.Int64s()[1] = ProbeValue
	return out, nil
}
