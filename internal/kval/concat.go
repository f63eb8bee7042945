package kval

// Concat joins left then right.
//
// Rules, in order:
//   - either operand generic: the result is generic; list operands are
//     flattened one level, atoms are appended whole, a Unit operand adds nothing
//   - two homogeneous lists of the same type: a fresh list of that type
//   - anything else: TypeMismatch, with no partial result
//
// Inputs are never written.
func Concat(left, right Value) (Value, error) {
	_, lg := left.(Generic)
	_, rg := right.(Generic)
	if lg || rg {
		out := make(Generic, 0, genericWidth(left)+genericWidth(right))
		var err error
		if out, err = spread(out, left); err != nil {
			return nil, err
		}
		if out, err = spread(out, right); err != nil {
			return nil, err
		}
		return out, nil
	}

	l, lok := left.(List)
	r, rok := right.(List)
	if !lok || !rok || l.typ != r.typ {
		return nil, TypeMismatch(MsgConcatMismatch)
	}
	dom := l.dom
	if dom == nil {
		dom = r.dom
	}
	return List{typ: l.typ, data: appendFresh(l.data, r.data), dom: dom}, nil
}

func genericWidth(v Value) int {
	switch x := v.(type) {
	case Generic:
		return len(x)
	case List:
		return x.Len()
	case Unit:
		return 0
	}
	return 1
}

// spread appends the contribution of one generic-concat operand.
func spread(out Generic, v Value) (Generic, error) {
	switch x := v.(type) {
	case Generic:
		return append(out, x...), nil
	case List:
		for i := 0; i < x.Len(); i++ {
			out = append(out, x.At(i))
		}
		return out, nil
	case Unit:
		return out, nil
	case Atom:
		return append(out, x), nil
	}
	return nil, TypeMismatch(MsgConcatMismatch)
}
