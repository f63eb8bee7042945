package kval

// Len returns the element count of a list, dictionary or table.
// Atoms report 1 and Unit reports 0.
func Len(v Value) int {
	switch x := v.(type) {
	case List:
		return x.Len()
	case Generic:
		return len(x)
	case Dict:
		return x.Len()
	case Table:
		return x.Len()
	case Atom:
		return 1
	}
	return 0
}

// IsAtom reports whether v is a single scalar.
func IsAtom(v Value) bool {
	_, ok := v.(Atom)
	return ok
}

// IsList reports whether v is a homogeneous or generic list.
func IsList(v Value) bool {
	switch v.(type) {
	case List, Generic:
		return true
	}
	return false
}

// Index returns element i of a list. Elements of a homogeneous list come
// back as atoms of the list's type.
func Index(v Value, i int) (Value, error) {
	switch x := v.(type) {
	case List:
		if i < 0 || i >= x.Len() {
			return nil, Precondition(MsgIndexOutOfRange)
		}
		return x.At(i), nil
	case Generic:
		if i < 0 || i >= len(x) {
			return nil, Precondition(MsgIndexOutOfRange)
		}
		return x[i], nil
	}
	return nil, TypeMismatch(MsgInvalidType)
}

// ToList lifts an atom into a one-element list of its type. A list is
// returned as a fresh copy; any other value is rejected.
func ToList(v Value) (Value, error) {
	switch x := v.(type) {
	case Atom:
		return List{typ: x.typ, data: appendOne(emptySlice(x.typ.Class()), x.v), dom: x.dom}, nil
	case List:
		return x.Clone(), nil
	case Generic:
		return GenericOf(x...), nil
	}
	return nil, TypeMismatch(MsgInvalidType)
}

// ToGeneric spreads a homogeneous list into a generic list of atoms.
// A generic list is returned as a fresh copy.
func ToGeneric(v Value) (Generic, error) {
	switch x := v.(type) {
	case Generic:
		return GenericOf(x...), nil
	case List:
		if x.typ == TypeEnum && x.dom == nil {
			return nil, TypeMismatch(MsgEnumWithoutDom)
		}
		out := make(Generic, x.Len())
		for i := range out {
			out[i] = x.At(i)
		}
		return out, nil
	}
	return nil, TypeMismatch(MsgNotSimpleList)
}
