package kval

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorders_OrderedTypes(t *testing.T) {
	tests := []struct {
		typ    Type
		null   Value
		posInf Value
		negInf Value
	}{
		{TypeShort, Short(-32768), Short(32767), Short(-32767)},
		{TypeInt, Int(math.MinInt32), Int(math.MaxInt32), Int(-math.MaxInt32)},
		{TypeLong, Long(math.MinInt64), Long(math.MaxInt64), Long(-math.MaxInt64)},
		{TypeReal, Real(math.Float32frombits(0xFFC00000)), Real(float32(math.Inf(1))), Real(float32(math.Inf(-1)))},
		{TypeFloat, Float(math.Float64frombits(0xFFF8000000000000)), Float(math.Inf(1)), Float(math.Inf(-1))},
		{TypeDate, Date(math.MinInt32), Date(math.MaxInt32), Date(-math.MaxInt32)},
		{TypeTimestamp, Timestamp(math.MinInt64), Timestamp(math.MaxInt64), Timestamp(-math.MaxInt64)},
		{TypeDatetime, Datetime(math.Float64frombits(0xFFF8000000000000)), Datetime(math.Inf(1)), Datetime(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			null, pos, neg, ok := Borders(tt.typ)
			require.True(t, ok)
			assert.True(t, Equal(tt.null, null), "null: got %s", Format(null))
			assert.True(t, Equal(tt.posInf, pos), "+inf: got %s", Format(pos))
			assert.True(t, Equal(tt.negInf, neg), "-inf: got %s", Format(neg))
		})
	}
}

func TestBorders_PairwiseDistinct(t *testing.T) {
	for _, typ := range Types() {
		null, pos, neg, ok := Borders(typ)
		if !ok {
			continue
		}
		assert.False(t, Equal(null, pos), "%s null == +inf", typ)
		assert.False(t, Equal(null, neg), "%s null == -inf", typ)
		assert.False(t, Equal(pos, neg), "%s +inf == -inf", typ)
	}
}

func TestBorders_NoInfinity(t *testing.T) {
	for _, typ := range []Type{TypeBool, TypeGUID, TypeByte, TypeChar, TypeSymbol, TypeEnum} {
		_, _, _, ok := Borders(typ)
		assert.False(t, ok, "%s should have no infinities", typ)
		assert.False(t, HasInfinity(typ))
	}
}

func TestNull_UnorderedTypes(t *testing.T) {
	assert.True(t, Equal(GUID(uuid.Nil), Null(TypeGUID)))
	assert.True(t, Equal(Char(' '), Null(TypeChar)))
	assert.True(t, Equal(Symbol(""), Null(TypeSymbol)))
	assert.True(t, Equal(Bool(false), Null(TypeBool)))
	assert.True(t, Equal(Byte(0), Null(TypeByte)))
	assert.Equal(t, Unit{}, Null(Type(3)))
}

func TestNull_NaNBitPattern(t *testing.T) {
	r := Null(TypeReal).(Atom).Payload().(float32)
	assert.Equal(t, uint32(0xFFC00000), math.Float32bits(r))

	f := Null(TypeFloat).(Atom).Payload().(float64)
	assert.Equal(t, uint64(0xFFF8000000000000), math.Float64bits(f))
}

func TestIsNull_IsInf(t *testing.T) {
	assert.True(t, IsNull(Long(LongNull)))
	assert.True(t, IsNull(Unit{}))
	assert.True(t, IsNull(String("")))
	assert.True(t, IsNull(Minute(IntNull)))
	assert.False(t, IsNull(Long(0)))
	assert.False(t, IsNull(Longs()))

	assert.True(t, IsInf(Short(ShortInf)))
	assert.True(t, IsInf(Float(math.Inf(-1))))
	assert.False(t, IsInf(Long(LongNull)))
	assert.False(t, IsInf(Symbol("inf")))
	assert.False(t, IsInf(Longs(LongInf)))
}

func TestAllBorders_CoversEveryType(t *testing.T) {
	rows := AllBorders()
	require.Len(t, rows, len(Types()))

	for i, row := range rows {
		assert.Equal(t, Types()[i], row.Type)
		assert.NotNil(t, row.Null)
		assert.Equal(t, HasInfinity(row.Type), row.PosInf != nil, "%s", row.Type)
	}
}
