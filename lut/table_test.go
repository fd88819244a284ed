package lut_test

import (
	"errors"
	"testing"

	"github.com/gogpu/shaderchain/hal/noop"
	"github.com/gogpu/shaderchain/lut"
	"github.com/gogpu/shaderchain/preset"
	"github.com/gogpu/shaderchain/types"
)

type fakeDecoder struct {
	sizes map[string]types.Size
	err   error
}

func (f fakeDecoder) Decode(path string) (lut.Decoded, error) {
	if f.err != nil {
		return lut.Decoded{}, f.err
	}
	size := f.sizes[path]
	return lut.Decoded{Pixels: make([]byte, size.Width*size.Height*4), Size: size}, nil
}

func TestBuildLoadsEntriesInOrder(t *testing.T) {
	dev, err := (noop.Backend{}).Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	decoder := fakeDecoder{sizes: map[string]types.Size{
		"a.png": {Width: 4, Height: 4},
		"b.png": {Width: 8, Height: 8},
	}}
	configs := []preset.LutConfig{
		{Path: "a.png", Wrap: types.WrapClamp, Filter: types.FilterLinear},
		{Path: "b.png", Wrap: types.WrapRepeat, Filter: types.FilterNearest, Mipmap: true},
	}

	table, err := lut.Build(dev, decoder, configs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	e0, ok := table.At(0)
	if !ok || e0.Size != (types.Size{Width: 4, Height: 4}) {
		t.Fatalf("entry 0 = %+v, ok=%v", e0, ok)
	}
	e1, ok := table.At(1)
	if !ok || e1.Size != (types.Size{Width: 8, Height: 8}) {
		t.Fatalf("entry 1 = %+v, ok=%v", e1, ok)
	}
	if e1.Sample.Mip != types.MipFilterLinear {
		t.Fatalf("entry 1 mip filter = %v, want Linear (mipmap requested)", e1.Sample.Mip)
	}
}

func TestBuildDecodeFailureLeavesNoPartialTable(t *testing.T) {
	dev, err := (noop.Backend{}).Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	decoder := fakeDecoder{err: errors.New("boom")}
	configs := []preset.LutConfig{{Path: "missing.png"}}

	table, err := lut.Build(dev, decoder, configs)
	if err == nil {
		t.Fatal("expected an error")
	}
	if table != nil {
		t.Fatal("expected a nil table on failure")
	}
}

func TestAtOutOfRange(t *testing.T) {
	dev, err := (noop.Backend{}).Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	table, err := lut.Build(dev, fakeDecoder{sizes: map[string]types.Size{}}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := table.At(0); ok {
		t.Fatal("expected At(0) to report false on an empty table")
	}
}
