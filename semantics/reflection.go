package semantics

import "github.com/gogpu/shaderchain/hal"

// SemanticTag names a role a uniform or texture binding can play. Tags
// that carry an index (OriginalHistory, PassOutput, PassFeedback, User)
// are disambiguated by UniformBinding.Index / TextureBinding.Index.
type SemanticTag uint8

const (
	SemanticMVP SemanticTag = iota
	SemanticOutputSize
	SemanticFinalViewportSize
	SemanticFrameCount
	SemanticFrameDirection
	SemanticOriginalSize
	SemanticSourceSize
	SemanticOriginalHistory
	SemanticPassOutput
	SemanticPassFeedback
	SemanticUser
	// SemanticOriginal and SemanticSource are texture-only tags (no
	// size-uniform counterpart): the frame's original input image, and
	// this pass's immediate source image.
	SemanticOriginal
	SemanticSource
)

// BindingKind distinguishes the three shapes a reflected uniform member
// can take.
type BindingKind uint8

const (
	// BindingParameter is a user-settable named float.
	BindingParameter BindingKind = iota
	// BindingSemanticVariable is a built-in value identified by tag
	// (and Index, for the indexed tags).
	BindingSemanticVariable
	// BindingTextureSize is the size uniform paired with a texture
	// semantic identified by tag and Index.
	BindingTextureSize
)

// UniformBinding identifies what a reflected uniform member means.
type UniformBinding struct {
	Kind BindingKind
	Name string      // set when Kind == BindingParameter
	Tag  SemanticTag // set when Kind != BindingParameter
	// Index disambiguates indexed tags: OriginalHistory[k], PassOutput[j],
	// PassFeedback[j].
	Index uint32
}

// OffsetKind distinguishes which CPU-side buffer an Offset addresses.
type OffsetKind uint8

const (
	OffsetUBO OffsetKind = iota
	OffsetPushConstant
)

// Offset is a byte offset tagged with which block it belongs to.
type Offset struct {
	Kind OffsetKind
	Byte uint32
}

// UniformMember is one reflected uniform: what it means, where it lives,
// and which shader stages declared it.
type UniformMember struct {
	Binding UniformBinding
	Offset  Offset
	Stages  hal.ShaderStages
}

// TextureBinding is one reflected texture semantic: what it means and
// which shader binding point it occupies.
type TextureBinding struct {
	Tag          SemanticTag
	Index        uint32
	BindingPoint uint32
}

// BlockInfo describes a declared UBO or push-constant block.
type BlockInfo struct {
	Size    uint32
	Binding uint32 // meaningful for UBO only
}

// Reflection is everything the compile pipeline reports about one
// compiled pass: its declared blocks and every uniform/texture binding
// inside them.
type Reflection struct {
	UBO          *BlockInfo // nil if the pass declares no UBO
	PushConstant *BlockInfo // nil if the pass declares no push constants
	Uniforms     []UniformMember
	Textures     []TextureBinding

	// NamedLocations maps a reflected member's source name to a
	// backend-specific location handle (e.g. a named GL uniform
	// location). Only populated for backends that need named lookup
	// instead of byte-offset addressing; nil otherwise.
	NamedLocations map[string]any
}

// Compiler compiles one pass's shader source into a backend program plus
// its reflection. Implementations (SPIR-V cross-compilation, GLSL
// transpilation, etc.) live outside this module.
type Compiler interface {
	Compile(source string) (hal.Program, *Reflection, error)
}
