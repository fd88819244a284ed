// Command chainrun demonstrates loading a preset and driving a handful
// of frames through it. It has no shader compiler, image decoder or preset
// parser of its own — it builds its preset in memory, supplies trivial
// stand-ins for the compiler and the decoder, and runs against the noop
// backend, so it needs no GPU.
package main

import (
	"fmt"
	"log"

	"github.com/gogpu/shaderchain"
	"github.com/gogpu/shaderchain/hal"
	_ "github.com/gogpu/shaderchain/hal/noop"
	"github.com/gogpu/shaderchain/lut"
	"github.com/gogpu/shaderchain/preset"
	"github.com/gogpu/shaderchain/semantics"
	"github.com/gogpu/shaderchain/types"
)

// passthroughCompiler stands in for the shader compile pipeline: every
// pass gets an identical, minimal reflection (a viewport-sized draw with
// no uniforms beyond MVP/OutputSize and a single Source texture).
type passthroughCompiler struct{}

func (passthroughCompiler) Compile(source string) (hal.Program, *semantics.Reflection, error) {
	reflection := &semantics.Reflection{
		UBO: &semantics.BlockInfo{Size: 80, Binding: 0},
		Uniforms: []semantics.UniformMember{
			{
				Binding: semantics.UniformBinding{Kind: semantics.BindingSemanticVariable, Tag: semantics.SemanticMVP},
				Offset:  semantics.Offset{Kind: semantics.OffsetUBO, Byte: 0},
				Stages:  hal.StageVertex,
			},
			{
				Binding: semantics.UniformBinding{Kind: semantics.BindingSemanticVariable, Tag: semantics.SemanticOutputSize},
				Offset:  semantics.Offset{Kind: semantics.OffsetUBO, Byte: 64},
				Stages:  hal.StageFragment,
			},
		},
		Textures: []semantics.TextureBinding{
			{Tag: semantics.SemanticSource, BindingPoint: 0},
		},
	}
	return hal.Program{}, reflection, nil
}

// noopDecoder stands in for the image decoder: every LUT path decodes to
// a fixed 1x1 white pixel.
type noopDecoder struct{}

func (noopDecoder) Decode(path string) (lut.Decoded, error) {
	return lut.Decoded{Pixels: []byte{255, 255, 255, 255}, Size: types.Size{Width: 1, Height: 1}}, nil
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("chainrun: %v", err)
	}
}

func run() error {
	device, err := hal.OpenDevice(hal.VariantNoop)
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}

	chainPreset := &preset.Preset{
		Passes: []preset.PassConfig{
			{
				ShaderPath: shaderStubPath(),
				Scale:      types.ScaleRule{X: types.ScaleAxis{Kind: types.ScaleSource, Factor: 1}, Y: types.ScaleAxis{Kind: types.ScaleSource, Factor: 1}},
				Filter:     types.FilterLinear,
				Wrap:       types.WrapClamp,
			},
		},
	}

	chain, err := shaderchain.LoadFromPreset(device, passthroughCompiler{}, noopDecoder{}, chainPreset, shaderchain.LoadOptions{})
	if err != nil {
		return fmt.Errorf("load preset: %w", err)
	}
	defer chain.Destroy()

	viewport := shaderchain.Viewport{
		OutputSize: types.Size{Width: 1280, Height: 720},
		Output:     hal.Texture{Backend: uint64(1)},
	}
	input := types.ImageHandle{Size: types.Size{Width: 256, Height: 224}, Format: types.FormatRGBA8Unorm}

	for count := uint64(0); count < 3; count++ {
		if err := chain.Frame(count, viewport, input, shaderchain.FrameOptions{}); err != nil {
			return fmt.Errorf("frame %d: %w", count, err)
		}
		fmt.Printf("frame %d rendered\n", count)
	}
	return nil
}

// shaderStubPath returns a path chainrun reads as shader source. In this
// demo the compiler ignores its contents entirely, so any readable file
// works; a real caller points this at the pass's actual shader file.
func shaderStubPath() string {
	return "/dev/null"
}
