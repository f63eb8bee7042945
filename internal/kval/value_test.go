package kval

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtom_Codes(t *testing.T) {
	assert.Equal(t, int8(-7), Long(1).Code())
	assert.Equal(t, int8(7), Longs(1).Code())
	assert.Equal(t, int8(10), String("a").Code())
	assert.Equal(t, int8(-20), EnumOf(NewDomain("d", "a"), 0).Code())
	assert.Equal(t, CodeGeneric, GenericOf().Code())
	assert.Equal(t, CodeUnit, Unit{}.Code())
	assert.Equal(t, CodeError, Err{}.Code())
}

func TestNewAtom_StorageClass(t *testing.T) {
	a, err := NewAtom(TypeDate, int32(5))
	require.NoError(t, err)
	assert.True(t, Equal(Date(5), a))

	_, err = NewAtom(TypeDate, int64(5))
	assert.Error(t, err)

	_, err = NewAtom(Type(3), int64(5))
	assert.Error(t, err)
}

func TestNewList_StorageClass(t *testing.T) {
	l, err := NewList(TypeMinute, []int32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	_, err = NewList(TypeMinute, []int64{1})
	assert.Error(t, err)

	empty, err := NewList(TypeSymbol, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestListOf(t *testing.T) {
	l, err := ListOf(TypeLong, Long(1), Long(2))
	require.NoError(t, err)
	assert.True(t, Equal(Longs(1, 2), l))

	_, err = ListOf(TypeLong, Long(1), Int(2))
	assert.Error(t, err)
}

func TestListOf_EnumDomains(t *testing.T) {
	a := NewDomain("a", "x")
	b := NewDomain("b", "x")

	l, err := ListOf(TypeEnum, EnumOf(a, 0), EnumOf(a, 0))
	require.NoError(t, err)
	assert.Same(t, a, l.Domain())

	_, err = ListOf(TypeEnum, EnumOf(a, 0), EnumOf(b, 0))
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	d := NewDomain("d", "x")

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same longs", Longs(1, 2), Longs(1, 2), true},
		{"order matters", Longs(1, 2), Longs(2, 1), false},
		{"type tag matters", Long(1), Timestamp(1), false},
		{"atom vs list", Long(1), Longs(1), false},
		{"null nan equals itself", Float(FloatNull()), Float(FloatNull()), true},
		{"signed zero differs", Float(0), Float(math.Copysign(0, -1)), false},
		{"real null list", Reals(RealNull()), Reals(RealNull()), true},
		{"generic deep", GenericOf(Longs(1), Unit{}), GenericOf(Longs(1), Unit{}), true},
		{"generic differs", GenericOf(Longs(1)), GenericOf(Longs(2)), false},
		{"enum same domain", EnumOf(d, 0), EnumOf(NewDomain("d", "x"), 0), true},
		{"enum other domain", EnumOf(d, 0), EnumOf(NewDomain("e", "x"), 0), false},
		{"guids", GUIDs(uuid.Nil), GUIDs(uuid.Nil), true},
		{"errors", Err{Message: "a"}, Err{Message: "b"}, false},
		{"nil", nil, nil, true},
		{"nil vs unit", nil, Unit{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestList_CloneIsFresh(t *testing.T) {
	l := Longs(1, 2)
	c := l.Clone()
	c.Int64s()[0] = 9
	assert.Equal(t, int64(1), l.Int64s()[0])
}

func TestDomain_Enumerate(t *testing.T) {
	d := NewDomain("sym", "a", "b")

	a, err := Enumerate(d, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Int64())
	assert.Same(t, d, a.Domain())

	_, err = Enumerate(d, "c")
	assert.Error(t, err)

	_, err = Enumerate(nil, "a")
	assert.Error(t, err)
}

func TestConvert_ToList(t *testing.T) {
	got, err := ToList(Long(4))
	require.NoError(t, err)
	assert.True(t, Equal(Longs(4), got))

	got, err = ToList(Symbols("a"))
	require.NoError(t, err)
	assert.True(t, Equal(Symbols("a"), got))

	_, err = ToList(Unit{})
	require.Error(t, err)
	assert.Equal(t, "invalid type", Diagnostic(err))
}

func TestConvert_ToGeneric(t *testing.T) {
	got, err := ToGeneric(Longs(1, 2))
	require.NoError(t, err)
	assert.True(t, Equal(GenericOf(Long(1), Long(2)), got))

	_, err = ToGeneric(EnumsOf(nil, 0))
	require.Error(t, err)
	assert.Equal(t, "Enum list must have exactly one source per atom", Diagnostic(err))

	_, err = ToGeneric(Long(1))
	require.Error(t, err)
	assert.Equal(t, "self is not a simple list", Diagnostic(err))
}

func TestConvert_LenAndIndex(t *testing.T) {
	assert.Equal(t, 3, Len(Longs(1, 2, 3)))
	assert.Equal(t, 2, Len(GenericOf(Unit{}, Unit{})))
	assert.Equal(t, 1, Len(Symbol("a")))
	assert.Equal(t, 0, Len(Unit{}))
	assert.True(t, IsAtom(Long(1)))
	assert.False(t, IsAtom(Longs(1)))
	assert.True(t, IsList(GenericOf()))
	assert.False(t, IsList(Unit{}))

	v, err := Index(Symbols("a", "b"), 1)
	require.NoError(t, err)
	assert.True(t, Equal(Symbol("b"), v))

	_, err = Index(Longs(1), 1)
	assert.True(t, IsPrecondition(err))

	_, err = Index(Long(1), 0)
	assert.True(t, IsTypeMismatch(err))
}

func TestDict(t *testing.T) {
	d, err := NewDict(Symbols("a", "b"), GenericOf(Long(1), String("x")))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	v, ok := d.Lookup(Symbol("b"))
	require.True(t, ok)
	assert.True(t, Equal(String("x"), v))

	_, ok = d.Lookup(Symbol("c"))
	assert.False(t, ok)

	_, err = NewDict(Symbols("a"), Longs(1, 2))
	assert.True(t, IsPrecondition(err))

	_, err = NewDict(Symbol("a"), Longs(1))
	assert.True(t, IsTypeMismatch(err))
}

func TestTable(t *testing.T) {
	tbl, err := NewTable(Symbols("sym", "px"), GenericOf(Symbols("a", "b"), Floats(1.5, 2.5)))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 2, tbl.Width())
	assert.Equal(t, []string{"sym", "px"}, tbl.Names())
	assert.Equal(t, CodeTable, tbl.Code())

	col, err := tbl.Column(1)
	require.NoError(t, err)
	assert.True(t, Equal(Floats(1.5, 2.5), col))

	px, ok := tbl.ColumnByName("px")
	require.True(t, ok)
	assert.True(t, Equal(col, px))

	row, err := tbl.Row(1)
	require.NoError(t, err)
	v, ok := row.Lookup(Symbol("sym"))
	require.True(t, ok)
	assert.True(t, Equal(Symbol("b"), v))

	_, err = tbl.Row(2)
	assert.True(t, IsPrecondition(err))
}

func TestTable_Validation(t *testing.T) {
	_, err := NewTable(Symbols("a", "b"), GenericOf(Longs(1), Longs(1, 2)))
	assert.True(t, IsPrecondition(err))

	_, err = NewTable(Symbols("a"), GenericOf(Long(1)))
	assert.True(t, IsTypeMismatch(err))

	_, err = NewTable(Longs(1), GenericOf(Longs(1)))
	assert.True(t, IsTypeMismatch(err))
}

func TestError_Predicates(t *testing.T) {
	wrapped := fmt.Errorf("failed to call concat: %w", TypeMismatch(MsgConcatMismatch))

	assert.True(t, IsTypeMismatch(wrapped))
	assert.False(t, IsPrecondition(wrapped))
	assert.Equal(t, MsgConcatMismatch, Diagnostic(wrapped))
	assert.Equal(t, "TYPE_MISMATCH: not a list or types do not match", TypeMismatch(MsgConcatMismatch).Error())

	load := LoadFailure("concat", "symbol not found")
	assert.True(t, IsLoadError(load))
	assert.Contains(t, load.Error(), "symbol=concat")

	assert.Equal(t, "plain", Diagnostic(errors.New("plain")))
	assert.Equal(t, "", Diagnostic(nil))
}
