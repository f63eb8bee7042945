package bridge

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/uuid"

	"github.com/roach88/kbridge/internal/kval"
)

// Arrow implements the bridge on Apache Arrow columnar buffers.
//
// Homogeneous lists are copied into Arrow arrays, joined with
// array.Concatenate and copied back out. Sentinels travel as ordinary
// values: no validity bitmap is ever set, so a null long stays
// math.MinInt64 end to end. Every buffer is released before returning.
type Arrow struct {
	printer
	mem memory.Allocator
}

// NewArrow creates the arrow bridge. A nil allocator uses the Go allocator.
func NewArrow(w io.Writer, mem memory.Allocator) *Arrow {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Arrow{printer: printer{w: w}, mem: mem}
}

func (*Arrow) Name() string { return "arrow" }

// Concat joins two same-type lists through Arrow. Generic operands have no
// columnar form and go through the value engine.
func (a *Arrow) Concat(left, right kval.Value) (kval.Value, error) {
	l, lok := left.(kval.List)
	r, rok := right.(kval.List)
	if !lok || !rok {
		return kval.Concat(left, right)
	}
	if l.Type() != r.Type() {
		return nil, kval.TypeMismatch(kval.MsgConcatMismatch)
	}

	la, err := a.column(l)
	if err != nil {
		return nil, err
	}
	defer la.Release()

	ra, err := a.column(r)
	if err != nil {
		return nil, err
	}
	defer ra.Release()

	joined, err := array.Concatenate([]arrow.Array{la, ra}, a.mem)
	if err != nil {
		return nil, fmt.Errorf("failed to concatenate %s columns: %w", l.Type(), err)
	}
	defer joined.Release()

	dom := l.Domain()
	if dom == nil {
		dom = r.Domain()
	}
	return fromColumn(l.Type(), dom, joined)
}

// ModifyLongList rebuilds the Long column with element 1 replaced.
func (a *Arrow) ModifyLongList(v kval.Value) (kval.Value, error) {
	l, ok := v.(kval.List)
	if !ok || l.Type() != kval.TypeLong {
		return nil, kval.TypeMismatch(kval.MsgInvalidType)
	}
	if l.Len() < 2 {
		return nil, kval.Precondition(kval.MsgListTooShort)
	}

	src := l.Int64s()
	b := array.NewInt64Builder(a.mem)
	defer b.Release()
	b.Reserve(len(src))
	b.Append(src[0])
	b.Append(kval.ProbeValue)
	b.AppendValues(src[2:], nil)

	arr := b.NewInt64Array()
	defer arr.Release()
	return kval.Longs(arr.Int64Values()...), nil
}

type builder[T any] interface {
	AppendValues(v []T, valid []bool)
	NewArray() arrow.Array
	Release()
}

func build[T any, B builder[T]](b B, vals []T) arrow.Array {
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewArray()
}

// column copies a list into an Arrow array of its storage class.
func (a *Arrow) column(l kval.List) (arrow.Array, error) {
	switch data := l.Data().(type) {
	case []bool:
		return build(array.NewBooleanBuilder(a.mem), data), nil
	case []byte:
		return build(array.NewUint8Builder(a.mem), data), nil
	case []int16:
		return build(array.NewInt16Builder(a.mem), data), nil
	case []int32:
		return build(array.NewInt32Builder(a.mem), data), nil
	case []int64:
		return build(array.NewInt64Builder(a.mem), data), nil
	case []float32:
		return build(array.NewFloat32Builder(a.mem), data), nil
	case []float64:
		return build(array.NewFloat64Builder(a.mem), data), nil
	case []string:
		return build(array.NewStringBuilder(a.mem), data), nil
	case []uuid.UUID:
		raw := make([][]byte, len(data))
		for i := range data {
			raw[i] = data[i][:]
		}
		fb := array.NewFixedSizeBinaryBuilder(a.mem, &arrow.FixedSizeBinaryType{ByteWidth: 16})
		return build(fb, raw), nil
	}
	return nil, fmt.Errorf("no columnar form for %s lists", l.Type())
}

// fromColumn copies an Arrow array back into a fresh list of type t.
func fromColumn(t kval.Type, dom *kval.Domain, arr arrow.Array) (kval.Value, error) {
	var data any
	switch col := arr.(type) {
	case *array.Boolean:
		out := make([]bool, col.Len())
		for i := range out {
			out[i] = col.Value(i)
		}
		data = out
	case *array.Uint8:
		data = slices.Clone(col.Uint8Values())
	case *array.Int16:
		data = slices.Clone(col.Int16Values())
	case *array.Int32:
		data = slices.Clone(col.Int32Values())
	case *array.Int64:
		if t == kval.TypeEnum {
			return kval.EnumsOf(dom, col.Int64Values()...), nil
		}
		data = slices.Clone(col.Int64Values())
	case *array.Float32:
		data = slices.Clone(col.Float32Values())
	case *array.Float64:
		data = slices.Clone(col.Float64Values())
	case *array.String:
		out := make([]string, col.Len())
		for i := range out {
			out[i] = strings.Clone(col.Value(i))
		}
		data = out
	case *array.FixedSizeBinary:
		out := make([]uuid.UUID, col.Len())
		for i := range out {
			copy(out[i][:], col.Value(i))
		}
		data = out
	default:
		return nil, fmt.Errorf("unexpected column type %s", arr.DataType())
	}
	l, err := kval.NewList(t, data)
	if err != nil {
		return nil, err
	}
	return l, nil
}
