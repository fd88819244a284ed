package hal

import "github.com/gogpu/shaderchain/types"

// Variant identifies a backend shape. Two are named by the spec; a third
// (Noop) exists purely for tests.
type Variant uint8

const (
	// VariantImmediate is a global-state, framebuffer-object backend
	// (OpenGL/GLES shape).
	VariantImmediate Variant = iota
	// VariantExplicit is a command-buffer backend with manual image-layout
	// transitions and descriptor sets (Vulkan shape).
	VariantExplicit
	// VariantNoop performs no GPU work; used by tests.
	VariantNoop
)

func (v Variant) String() string {
	switch v {
	case VariantImmediate:
		return "Immediate"
	case VariantExplicit:
		return "Explicit"
	case VariantNoop:
		return "Noop"
	default:
		return "Variant(?)"
	}
}

// QuadKind selects which pre-populated draw quad to issue: the
// (-1,-1)..(1,1) NDC quad used for intermediate passes, or the (0,0)..(1,1)
// quad used for the final pass into the caller's viewport.
type QuadKind uint8

const (
	QuadIntermediate QuadKind = iota
	QuadFinal
)

// ShaderStages is a bitmask of which shader stages a uniform write or
// sampler binding applies to.
type ShaderStages uint8

const (
	StageVertex ShaderStages = 1 << iota
	StageFragment
)

// Location addresses one uniform member inside a compiled program: a
// backend-specific handle (named GL uniform location, or a Vulkan
// descriptor/push-constant offset already known to the program) plus the
// stage mask it was declared for.
type Location struct {
	Backend any
	Stages  ShaderStages
}

// RingSlot addresses one uniform-ring slot within a UBO write: the
// block's backend binding handle (the value a Location.Backend would
// otherwise carry directly) plus which of the ring's rotating buffers
// this frame's write targets. Package pass sets Location.Backend to a
// RingSlot whenever a pass declares a UBO, so a concrete backend can tell
// "write to ring slot N of this block" apart from "write to this single
// named location" without a second Device method.
type RingSlot struct {
	Binding any
	Slot    int
}

// Texture is an opaque handle to a backend-owned image.
type Texture struct {
	Backend any
}

// Sampler is an opaque handle to a backend sampler object.
type Sampler struct {
	Backend any
}

// Program is an opaque handle to a compiled, linked shader program.
type Program struct {
	Backend any
}

// RenderTargetDescriptor describes the destination of a draw: either a
// managed image's attachment, or the caller's viewport surface.
type RenderTargetDescriptor struct {
	Texture Texture
	Size    types.Size
	// IsViewport is true when this target is the caller-supplied output
	// surface rather than an intermediate pass's managed image.
	IsViewport bool
	// X, Y are the viewport offset; only meaningful when IsViewport.
	X, Y int32
	// MVP overrides the default orthographic identity when set and
	// IsViewport is true.
	MVP *types.Mat4
}

// Device is the capability set the orchestrator programs against. Each
// concrete backend (package hal/glimmediate, hal/vkcmd, hal/noop)
// implements Device.
type Device interface {
	// Variant reports which backend shape this is.
	Variant() Variant

	// CreateTexture allocates a sampled-only backend image of the given
	// size/format/mip levels. Passing types.FormatUnknown substitutes
	// linear RGBA8. The glimmediate and vkcmd backends allocate linear
	// RGBA8 storage whatever format is passed.
	CreateTexture(size types.Size, format types.TextureFormat, levels uint32) (Texture, error)

	// DestroyTexture releases a backend image created by CreateTexture or
	// CreateRenderTarget.
	DestroyTexture(Texture)

	// UploadTexture writes pixels (tightly packed, top-to-bottom RGBA8) into
	// level 0 of tex, which must already be sized size by its creation call.
	// Used to populate a LUT texture with its decoded image; never called
	// on a render target.
	UploadTexture(tex Texture, size types.Size, pixels []byte) error

	// CreateRenderTarget allocates a backend image usable as a draw
	// destination (a managed image's backing store). On an
	// immediate-mode backend that reports framebuffer-incomplete for the
	// requested format, implementations fall back once to linear RGBA8
	// and retry; a second incomplete result is reported as an
	// *AllocationError.
	CreateRenderTarget(size types.Size, format types.TextureFormat, levels uint32) (Texture, error)

	// BindRenderTarget binds target as the active draw destination. The
	// backends in this module do not set the GPU viewport rectangle from
	// the descriptor's X, Y and Size.
	BindRenderTarget(target RenderTargetDescriptor) error

	// ClearColor clears target to the given color across every channel.
	ClearColor(target Texture, color types.Color) error

	// CopyInto blits src into dst pixel-for-pixel. Caller guarantees equal
	// size and format; backends that need layout transitions perform them
	// internally.
	CopyInto(dst, src Texture) error

	// GenerateMipmaps produces levels-1 downsampled mip levels for tex by
	// successive box/linear blits from level i to level i+1.
	GenerateMipmaps(tex Texture, levels uint32) error

	// SamplerFor returns the sampler object for key, constructing it if
	// this is the first request. The caller-side cache (package sampler)
	// is the canonical dedup point; backends may construct eagerly.
	SamplerFor(key types.SamplerKey) (Sampler, error)

	// SetUniform writes raw bytes at loc for the given stage mask.
	// bytes must fit the member's declared size; backends do not
	// reinterpret them.
	SetUniform(loc Location, bytes []byte) error

	// BindSampled binds an image+sampler pair to a shader binding point
	// for the next draw call.
	BindSampled(binding uint32, tex Texture, samp Sampler, stages ShaderStages) error

	// DrawQuad issues a four-vertex quad draw, using whatever
	// program/vertex/uniform/texture bindings are currently set. The
	// backends in this module do not select different vertex data by
	// kind.
	DrawQuad(kind QuadKind) error
}

// Backend is the factory every backend package registers: it names its
// Variant and opens a Device.
type Backend interface {
	Variant() Variant
	Open() (Device, error)
}
