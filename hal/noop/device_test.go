package noop_test

import (
	"testing"

	"github.com/gogpu/shaderchain/hal"
	_ "github.com/gogpu/shaderchain/hal/noop"
	"github.com/gogpu/shaderchain/types"
)

func TestRegistersUnderNoopVariant(t *testing.T) {
	b, ok := hal.GetBackend(hal.VariantNoop)
	if !ok {
		t.Fatal("noop backend not registered")
	}
	if b.Variant() != hal.VariantNoop {
		t.Fatalf("Variant() = %v, want %v", b.Variant(), hal.VariantNoop)
	}
}

func TestOpenDeviceDriveable(t *testing.T) {
	dev, err := hal.OpenDevice(hal.VariantNoop)
	if err != nil {
		t.Fatalf("OpenDevice: %v", err)
	}

	size := types.Size{Width: 320, Height: 240}
	tex, err := dev.CreateRenderTarget(size, types.FormatRGBA8Unorm, 1)
	if err != nil {
		t.Fatalf("CreateRenderTarget: %v", err)
	}
	if err := dev.BindRenderTarget(hal.RenderTargetDescriptor{Texture: tex, Size: size}); err != nil {
		t.Fatalf("BindRenderTarget: %v", err)
	}
	if err := dev.ClearColor(tex, types.OpaqueBlack); err != nil {
		t.Fatalf("ClearColor: %v", err)
	}

	samp, err := dev.SamplerFor(types.SamplerKey{Wrap: types.WrapRepeat, Filter: types.FilterLinear})
	if err != nil {
		t.Fatalf("SamplerFor: %v", err)
	}
	if err := dev.BindSampled(0, tex, samp, hal.StageFragment); err != nil {
		t.Fatalf("BindSampled: %v", err)
	}
	if err := dev.DrawQuad(hal.QuadFinal); err != nil {
		t.Fatalf("DrawQuad: %v", err)
	}
}

func TestCreateTextureHandlesAreDistinct(t *testing.T) {
	dev, err := hal.OpenDevice(hal.VariantNoop)
	if err != nil {
		t.Fatalf("OpenDevice: %v", err)
	}
	size := types.Size{Width: 4, Height: 4}
	a, _ := dev.CreateTexture(size, types.FormatRGBA8Unorm, 1)
	b, _ := dev.CreateTexture(size, types.FormatRGBA8Unorm, 1)
	if a.Backend == b.Backend {
		t.Fatalf("expected distinct handles, got %v == %v", a.Backend, b.Backend)
	}
}
