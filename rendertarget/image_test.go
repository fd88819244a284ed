package rendertarget_test

import (
	"testing"

	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/hal/noop"
	"github.com/gogpu/shaderchain/rendertarget"
	"github.com/gogpu/shaderchain/types"
)

func newDevice(t *testing.T) hal.Device {
	t.Helper()
	dev, err := (noop.Backend{}).Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return dev
}

func TestNewAllocatesPlaceholder(t *testing.T) {
	img, err := rendertarget.New(newDevice(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if img.Size() != (types.Size{Width: 1, Height: 1}) {
		t.Fatalf("Size() = %v, want 1x1", img.Size())
	}
	if img.Levels() < 1 {
		t.Fatalf("Levels() = %d, want >= 1", img.Levels())
	}
}

func TestResizeIdempotentWhenUnchanged(t *testing.T) {
	img, err := rendertarget.New(newDevice(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	size := types.Size{Width: 256, Height: 224}
	if err := img.Resize(size, types.FormatRGBA8Unorm); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	handle := img.Handle()

	if err := img.Resize(size, types.FormatRGBA8Unorm); err != nil {
		t.Fatalf("Resize (repeat): %v", err)
	}
	if img.Handle() != handle {
		t.Fatalf("idempotent resize changed the backend handle: %v -> %v", handle, img.Handle())
	}
}

func TestResizeReallocatesOnSizeChange(t *testing.T) {
	img, err := rendertarget.New(newDevice(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := img.Resize(types.Size{Width: 640, Height: 480}, types.FormatRGBA8Unorm); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	handle := img.Handle()

	if err := img.Resize(types.Size{Width: 1920, Height: 1080}, types.FormatRGBA8Unorm); err != nil {
		t.Fatalf("Resize (grow): %v", err)
	}
	if img.Handle() == handle {
		t.Fatal("expected a new backend handle after size change")
	}
	if img.Size() != (types.Size{Width: 1920, Height: 1080}) {
		t.Fatalf("Size() = %v, want 1920x1080", img.Size())
	}
}

func TestResizeSubstitutesUnknownFormat(t *testing.T) {
	img, err := rendertarget.New(newDevice(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := img.Resize(types.Size{Width: 8, Height: 8}, types.FormatUnknown); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if img.Format() != types.FormatRGBA8Unorm {
		t.Fatalf("Format() = %v, want RGBA8Unorm substitution", img.Format())
	}
}

func TestResizeClampsMipLevelsToMaxLevels(t *testing.T) {
	img, err := rendertarget.New(newDevice(t), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// 1920x1080 alone would produce 11 mip levels; maxLevels=1 must clamp.
	if err := img.Resize(types.Size{Width: 1920, Height: 1080}, types.FormatRGBA8Unorm); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if img.Levels() != 1 {
		t.Fatalf("Levels() = %d, want 1 (clamped by maxLevels)", img.Levels())
	}
}

func TestAsSampledDoesNotTransferOwnership(t *testing.T) {
	img, err := rendertarget.New(newDevice(t), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sampled := img.AsSampled(types.SamplerKey{Wrap: types.WrapClamp, Filter: types.FilterLinear})
	if sampled.Image.Backend != img.Handle().Backend {
		t.Fatalf("AsSampled handle mismatch: %v != %v", sampled.Image.Backend, img.Handle().Backend)
	}
	// The image is still usable (not destroyed) after viewing it.
	if err := img.Clear(); err != nil {
		t.Fatalf("Clear after AsSampled: %v", err)
	}
}
