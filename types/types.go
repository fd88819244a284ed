// Package types holds the value types shared by every layer of the filter
// chain engine: pixel sizes, wrap/filter modes, texture formats, and the
// small descriptor structs the backend abstraction (package hal) and the
// render-target pool (package rendertarget) pass between each other.
//
// Nothing in this package touches a GPU; it is pure data, mirroring how the
// teacher keeps its wire types free of backend code.
package types

import "fmt"

// Size is an unsigned 2D pixel extent. The zero value is not a valid size
// for an allocated image; allocation call sites clamp both axes to at
// least 1.
type Size struct {
	Width, Height uint32
}

// Scale multiplies both axes by f and rounds half-away-from-zero, matching
// the scaling resolver's rounding rule.
func (s Size) Scale(f float64) Size {
	return Size{
		Width:  roundAxis(float64(s.Width) * f),
		Height: roundAxis(float64(s.Height) * f),
	}
}

func roundAxis(v float64) uint32 {
	r := uint32(v + 0.5)
	if r < 1 {
		return 1
	}
	return r
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// MipLevels returns 1 + floor(log2(max(w, h))), the number of mip levels a
// full chain for this size would contain.
func (s Size) MipLevels() uint32 {
	m := s.Width
	if s.Height > m {
		m = s.Height
	}
	levels := uint32(1)
	for m > 1 {
		m >>= 1
		levels++
	}
	return levels
}

// WrapMode is the texture coordinate addressing mode for a sampled input.
type WrapMode uint8

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirroredRepeat
	WrapClampToBorder
	WrapMirroredClamp
)

func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "Clamp"
	case WrapRepeat:
		return "Repeat"
	case WrapMirroredRepeat:
		return "MirroredRepeat"
	case WrapClampToBorder:
		return "ClampToBorder"
	case WrapMirroredClamp:
		return "MirroredClamp"
	default:
		return fmt.Sprintf("WrapMode(%d)", uint8(w))
	}
}

// FilterMode is a minification/magnification filter.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

func (f FilterMode) String() string {
	if f == FilterLinear {
		return "Linear"
	}
	return "Nearest"
}

// MipFilter is the filter used between mip levels, kept distinct from
// FilterMode because a pass may sample nearest within a level while
// blending linearly across levels (or vice versa).
type MipFilter uint8

const (
	MipFilterNearest MipFilter = iota
	MipFilterLinear
)

// TextureFormat is a pixel format tag. Unknown is a sentinel meaning "use
// the chain's default linear RGBA8".
type TextureFormat uint32

const (
	FormatUnknown TextureFormat = iota
	FormatRGBA8Unorm
	FormatRGBA8UnormSRGB
	FormatBGRA8Unorm
	FormatRGBA16Float
	FormatRGBA32Float
	FormatR8Unorm
	FormatR16Float
)

func (f TextureFormat) String() string {
	switch f {
	case FormatUnknown:
		return "Unknown"
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatRGBA8UnormSRGB:
		return "RGBA8UnormSRGB"
	case FormatBGRA8Unorm:
		return "BGRA8Unorm"
	case FormatRGBA16Float:
		return "RGBA16Float"
	case FormatRGBA32Float:
		return "RGBA32Float"
	case FormatR8Unorm:
		return "R8Unorm"
	case FormatR16Float:
		return "R16Float"
	default:
		return fmt.Sprintf("TextureFormat(%d)", uint32(f))
	}
}

// SamplerKey is the lookup key for the sampler cache: a (wrap, min/mag
// filter, mip filter) triple. Two sampled inputs that request the same
// triple always share one backend sampler object.
type SamplerKey struct {
	Wrap   WrapMode
	Filter FilterMode
	Mip    MipFilter
}

// SampledInput is an image handle plus the sampling parameters a pass
// declared for it. It never owns the backing image it views.
type SampledInput struct {
	Image  ImageHandle
	Sample SamplerKey
}

// ImageHandle is an opaque backend image reference plus the metadata the
// orchestrator needs without going back through the backend: size, format,
// and mip level count.
type ImageHandle struct {
	Backend any // backend-specific handle (texture name, VkImage, etc.)
	Size    Size
	Format  TextureFormat
	Levels  uint32
}

// Color is a normalized RGBA color used for clears.
type Color struct {
	R, G, B, A float32
}

// OpaqueBlack is the clear color mandated for managed images and the
// initial contents of feedback/history images.
var OpaqueBlack = Color{R: 0, G: 0, B: 0, A: 1}

// Mat4 is a 4x4 column-major matrix, matching the viewport contract's MVP.
type Mat4 [16]float32

// Identity4 is the default orthographic-identity MVP used for intermediate
// passes that declare no viewport MVP of their own.
var Identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// ScaleKind selects which reference size a ScaleAxis is relative to.
type ScaleKind uint8

const (
	// ScaleSource scales relative to the previous pass's output (or the
	// input image, for pass 0).
	ScaleSource ScaleKind = iota
	// ScaleViewport scales relative to the caller's final viewport.
	ScaleViewport
	// ScaleAbsolute ignores every reference size; Factor is a pixel count.
	ScaleAbsolute
	// ScaleOriginal scales relative to the frame's original input image,
	// regardless of how many passes precede this one.
	ScaleOriginal
)

// ScaleAxis is one axis (width or height) of a pass's declared scale rule.
type ScaleAxis struct {
	Kind   ScaleKind
	Factor float64 // interpreted as a float multiplier, except under ScaleAbsolute where it is an exact pixel count
}

// ScaleRule is a pass's declared output-size rule, one ScaleAxis per axis.
type ScaleRule struct {
	X, Y ScaleAxis
}
