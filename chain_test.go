package shaderchain_test

import (
	"os"
	"path/filepath"
	"testing"

	shaderchain "github.com/gogpu/shaderchain"
	"github.com/gogpu/shaderchain/hal"
	_ "github.com/gogpu/shaderchain/hal/noop"
	"github.com/gogpu/shaderchain/lut"
	"github.com/gogpu/shaderchain/preset"
	"github.com/gogpu/shaderchain/semantics"
	"github.com/gogpu/shaderchain/types"
)

// scriptedCompiler returns one pre-built Reflection per call to Compile,
// in the order LoadFromPreset walks the preset's passes.
type scriptedCompiler struct {
	reflections []*semantics.Reflection
	calls       int
}

func (c *scriptedCompiler) Compile(source string) (hal.Program, *semantics.Reflection, error) {
	r := c.reflections[c.calls]
	c.calls++
	return hal.Program{}, r, nil
}

// blankDecoder decodes every LUT path to a single opaque white pixel;
// no real file is ever read.
type blankDecoder struct{}

func (blankDecoder) Decode(path string) (lut.Decoded, error) {
	return lut.Decoded{Pixels: []byte{255, 255, 255, 255}, Size: types.Size{Width: 1, Height: 1}}, nil
}

// sourceOnly is the minimal reflection: a pass that samples its immediate
// source and writes nothing else.
func sourceOnly() *semantics.Reflection {
	return &semantics.Reflection{
		Textures: []semantics.TextureBinding{{Tag: semantics.SemanticSource, BindingPoint: 0}},
	}
}

// shaderFile writes a placeholder shader file; scriptedCompiler never
// looks at its contents, but LoadFromPreset does os.ReadFile the path.
func shaderFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("placeholder"), 0o644); err != nil {
		t.Fatalf("writing shader stub: %v", err)
	}
	return path
}

func openNoop(t *testing.T) hal.Device {
	t.Helper()
	dev, err := hal.OpenDevice(hal.VariantNoop)
	if err != nil {
		t.Fatalf("OpenDevice: %v", err)
	}
	return dev
}

func basicViewport(w, h uint32) shaderchain.Viewport {
	return shaderchain.Viewport{OutputSize: types.Size{Width: w, Height: h}, Output: hal.Texture{Backend: "viewport"}}
}

// identityScale keeps a pass's output the same size as its source, the
// default a preset parser would emit for a pass with no scale directive.
var identityScale = types.ScaleRule{
	X: types.ScaleAxis{Kind: types.ScaleSource, Factor: 1},
	Y: types.ScaleAxis{Kind: types.ScaleSource, Factor: 1},
}

func TestFramePassthrough(t *testing.T) {
	device := openNoop(t)
	p := &preset.Preset{
		Passes: []preset.PassConfig{
			{ShaderPath: shaderFile(t, "pass0.shader"), Scale: identityScale, Filter: types.FilterLinear, Wrap: types.WrapClamp},
		},
	}
	compiler := &scriptedCompiler{reflections: []*semantics.Reflection{sourceOnly()}}
	chain, err := shaderchain.LoadFromPreset(device, compiler, blankDecoder{}, p, shaderchain.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFromPreset: %v", err)
	}
	defer chain.Destroy()

	input := types.ImageHandle{Backend: "frame0", Size: types.Size{Width: 320, Height: 240}, Format: types.FormatRGBA8Unorm}
	if err := chain.Frame(0, basicViewport(320, 240), input, shaderchain.FrameOptions{}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
}

func TestFrameTwoPassScaleAndViewport(t *testing.T) {
	device := openNoop(t)
	p := &preset.Preset{
		Passes: []preset.PassConfig{
			{
				ShaderPath: shaderFile(t, "pass0.shader"),
				Scale:      types.ScaleRule{X: types.ScaleAxis{Kind: types.ScaleSource, Factor: 2}, Y: types.ScaleAxis{Kind: types.ScaleSource, Factor: 2}},
				Filter:     types.FilterLinear,
				Wrap:       types.WrapClamp,
			},
			{
				ShaderPath: shaderFile(t, "pass1.shader"),
				Scale:      types.ScaleRule{X: types.ScaleAxis{Kind: types.ScaleViewport, Factor: 1}, Y: types.ScaleAxis{Kind: types.ScaleViewport, Factor: 1}},
				Filter:     types.FilterLinear,
				Wrap:       types.WrapClamp,
			},
		},
	}
	compiler := &scriptedCompiler{reflections: []*semantics.Reflection{sourceOnly(), sourceOnly()}}
	chain, err := shaderchain.LoadFromPreset(device, compiler, blankDecoder{}, p, shaderchain.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFromPreset: %v", err)
	}
	defer chain.Destroy()

	input := types.ImageHandle{Backend: "frame0", Size: types.Size{Width: 160, Height: 120}, Format: types.FormatRGBA8Unorm}
	if err := chain.Frame(0, basicViewport(640, 480), input, shaderchain.FrameOptions{}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
}

func TestFrameFeedback(t *testing.T) {
	device := openNoop(t)
	feedbackReflection := &semantics.Reflection{
		Textures: []semantics.TextureBinding{
			{Tag: semantics.SemanticSource, BindingPoint: 0},
			{Tag: semantics.SemanticPassFeedback, Index: 0, BindingPoint: 1},
		},
	}
	p := &preset.Preset{
		Passes: []preset.PassConfig{
			{ShaderPath: shaderFile(t, "feedback.shader"), Scale: identityScale, Filter: types.FilterLinear, Wrap: types.WrapClamp, Feedback: true},
			{ShaderPath: shaderFile(t, "pass1.shader"), Scale: identityScale, Filter: types.FilterLinear, Wrap: types.WrapClamp},
		},
	}
	compiler := &scriptedCompiler{reflections: []*semantics.Reflection{feedbackReflection, sourceOnly()}}
	chain, err := shaderchain.LoadFromPreset(device, compiler, blankDecoder{}, p, shaderchain.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFromPreset: %v", err)
	}
	defer chain.Destroy()

	input := types.ImageHandle{Backend: "frame", Size: types.Size{Width: 200, Height: 200}, Format: types.FormatRGBA8Unorm}
	vp := basicViewport(200, 200)
	// First frame has no real feedback image yet (still the placeholder);
	// the second frame samples what the first frame wrote.
	for i := uint64(0); i < 2; i++ {
		if err := chain.Frame(i, vp, input, shaderchain.FrameOptions{}); err != nil {
			t.Fatalf("Frame(%d): %v", i, err)
		}
	}
}

func TestFrameHistory(t *testing.T) {
	device := openNoop(t)
	historyReflection := &semantics.Reflection{
		Textures: []semantics.TextureBinding{
			{Tag: semantics.SemanticSource, BindingPoint: 0},
			{Tag: semantics.SemanticOriginalHistory, Index: 1, BindingPoint: 1},
		},
	}
	p := &preset.Preset{
		Passes: []preset.PassConfig{
			{ShaderPath: shaderFile(t, "history.shader"), Scale: identityScale, Filter: types.FilterLinear, Wrap: types.WrapClamp},
		},
	}
	compiler := &scriptedCompiler{reflections: []*semantics.Reflection{historyReflection}}
	chain, err := shaderchain.LoadFromPreset(device, compiler, blankDecoder{}, p, shaderchain.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFromPreset: %v", err)
	}
	defer chain.Destroy()

	vp := basicViewport(100, 100)
	for i := uint64(0); i < 3; i++ {
		input := types.ImageHandle{Backend: "frame", Size: types.Size{Width: 100, Height: 100}, Format: types.FormatRGBA8Unorm}
		if err := chain.Frame(i, vp, input, shaderchain.FrameOptions{}); err != nil {
			t.Fatalf("Frame(%d): %v", i, err)
		}
	}
}

func TestFrameDynamicResize(t *testing.T) {
	device := openNoop(t)
	p := &preset.Preset{
		Passes: []preset.PassConfig{
			{ShaderPath: shaderFile(t, "pass0.shader"), Scale: identityScale, Filter: types.FilterLinear, Wrap: types.WrapClamp},
		},
	}
	compiler := &scriptedCompiler{reflections: []*semantics.Reflection{sourceOnly()}}
	chain, err := shaderchain.LoadFromPreset(device, compiler, blankDecoder{}, p, shaderchain.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFromPreset: %v", err)
	}
	defer chain.Destroy()

	sizes := []types.Size{
		{Width: 320, Height: 240},
		{Width: 640, Height: 480},
		{Width: 160, Height: 90},
	}
	for i, size := range sizes {
		input := types.ImageHandle{Backend: "frame", Size: size, Format: types.FormatRGBA8Unorm}
		if err := chain.Frame(uint64(i), basicViewport(size.Width, size.Height), input, shaderchain.FrameOptions{}); err != nil {
			t.Fatalf("Frame(%d) at size %v: %v", i, size, err)
		}
	}
}

func TestPassesEnabledClamp(t *testing.T) {
	device := openNoop(t)
	p := &preset.Preset{
		Passes: []preset.PassConfig{
			{ShaderPath: shaderFile(t, "pass0.shader"), Scale: identityScale},
			{ShaderPath: shaderFile(t, "pass1.shader"), Scale: identityScale},
		},
	}
	compiler := &scriptedCompiler{reflections: []*semantics.Reflection{sourceOnly(), sourceOnly()}}
	chain, err := shaderchain.LoadFromPreset(device, compiler, blankDecoder{}, p, shaderchain.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFromPreset: %v", err)
	}
	defer chain.Destroy()

	chain.SetPassesEnabled(100)
	if chain.PassesEnabled() != 2 {
		t.Fatalf("PassesEnabled() = %d, want clamp to 2", chain.PassesEnabled())
	}
	chain.SetPassesEnabled(-5)
	if chain.PassesEnabled() != 0 {
		t.Fatalf("PassesEnabled() = %d, want clamp to 0", chain.PassesEnabled())
	}

	input := types.ImageHandle{Backend: "frame", Size: types.Size{Width: 64, Height: 64}, Format: types.FormatRGBA8Unorm}
	// Zero enabled passes: Frame must be a no-op, not an error.
	if err := chain.Frame(0, basicViewport(64, 64), input, shaderchain.FrameOptions{}); err != nil {
		t.Fatalf("Frame with 0 passes enabled: %v", err)
	}

	chain.SetPassesEnabled(1)
	if err := chain.Frame(1, basicViewport(64, 64), input, shaderchain.FrameOptions{}); err != nil {
		t.Fatalf("Frame with 1 pass enabled: %v", err)
	}
}
