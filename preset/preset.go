package preset

import "github.com/gogpu/shaderchain/types"

// PassConfig is one pass's immutable, preset-declared configuration.
type PassConfig struct {
	// ShaderPath is the source file the compile pipeline compiles for
	// this pass.
	ShaderPath string
	// Format is the pass's declared output format; FormatUnknown means
	// "use the chain's default linear RGBA8".
	Format types.TextureFormat
	// Scale is the pass's output-size rule.
	Scale types.ScaleRule
	// Filter and Wrap describe how later passes sample this pass's
	// output.
	Filter types.FilterMode
	Wrap   types.WrapMode
	// MipFilter applies when this pass's output is mip-mapped.
	MipFilter types.MipFilter
	// Mipmap requests mip generation on this pass's output after each
	// draw.
	Mipmap bool
	// FrameCountMod, when >0, reduces the frame counter modulo this
	// value before it is written as the FrameCount uniform.
	FrameCountMod uint32
	// Feedback opts this pass's output into the feedback ring, making
	// last frame's output available this frame as PassFeedback.
	Feedback bool
}

// LutConfig is one look-up texture entry.
type LutConfig struct {
	Path    string
	Wrap    types.WrapMode
	Filter  types.FilterMode
	Mipmap  bool
}

// Parameter is a user-overridable named float, with the preset's default
// value.
type Parameter struct {
	Name    string
	Default float32
}

// Preset is the parsed form of a preset file.
type Preset struct {
	Passes     []PassConfig
	Textures   []LutConfig
	Parameters []Parameter
}

// Parser parses a preset file from disk into a Preset. Implementations
// live outside this module; the orchestrator depends only on this
// interface.
type Parser interface {
	ParseFile(path string) (*Preset, error)
}
