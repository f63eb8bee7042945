package bridge

import (
	"io"

	"github.com/roach88/kbridge/internal/kval"
)

// Native delegates straight to the kval engine.
type Native struct {
	printer
}

// NewNative creates the native bridge. Printer output goes to w.
func NewNative(w io.Writer) *Native {
	return &Native{printer: printer{w: w}}
}

func (*Native) Name() string { return "native" }

func (*Native) Concat(left, right kval.Value) (kval.Value, error) {
	return kval.Concat(left, right)
}

func (*Native) ModifyLongList(v kval.Value) (kval.Value, error) {
	return kval.ModifyLongListABit(v)
}
