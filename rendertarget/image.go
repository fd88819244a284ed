package rendertarget

import (
	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/types"
)

// Image is a managed, GPU-backed render target: a backend image plus the
// metadata needed to resize, clear, copy into, and view it as a sampled
// input, without ever exposing the backend handle directly to callers.
//
// The zero value is not usable; construct with New.
type Image struct {
	device    hal.Device
	maxLevels uint32

	tex    hal.Texture
	size   types.Size
	format types.TextureFormat
	levels uint32
}

// New allocates a 1x1 placeholder image on device. maxLevels bounds the
// mip count a later resize may grow to; 0 means "unbounded" (limited only
// by the size's own mip ceiling).
func New(device hal.Device, maxLevels uint32) (*Image, error) {
	img := &Image{device: device, maxLevels: maxLevels}
	if err := img.Resize(types.Size{Width: 1, Height: 1}, types.FormatRGBA8Unorm); err != nil {
		return nil, err
	}
	return img, nil
}

// Size reports the image's current backing size.
func (img *Image) Size() types.Size { return img.size }

// Format reports the image's current backing format.
func (img *Image) Format() types.TextureFormat { return img.format }

// Levels reports the image's current mip level count.
func (img *Image) Levels() uint32 { return img.levels }

// Handle returns the backend texture handle, for use by callers (package
// pass) that bind this image as a render target.
func (img *Image) Handle() hal.Texture { return img.tex }

func (img *Image) clampedLevels(size types.Size) uint32 {
	max := img.maxLevels
	ceil := size.MipLevels()
	if max == 0 || ceil < max {
		max = ceil
	}
	if max < 1 {
		max = 1
	}
	return max
}

// Resize makes the image's backing store size×format, reallocating only
// if either differs from the current state. A format of FormatUnknown
// substitutes linear RGBA8. On allocation failure reported as
// framebuffer-incomplete, the caller (the orchestrator) is expected to
// have already picked a concrete format; Resize itself performs the one
// permitted fallback-and-retry to linear RGBA8 when allocation fails with
// any format other than linear RGBA8 (or Unknown, which already resolves
// to it).
func (img *Image) Resize(size types.Size, format types.TextureFormat) error {
	if size.Width < 1 {
		size.Width = 1
	}
	if size.Height < 1 {
		size.Height = 1
	}
	resolved := format
	if resolved == types.FormatUnknown {
		resolved = types.FormatRGBA8Unorm
	}

	if img.tex.Backend != nil && size == img.size && resolved == img.format {
		return nil
	}

	levels := img.clampedLevels(size)

	tex, err := img.device.CreateRenderTarget(size, resolved, levels)
	if err != nil {
		if resolved != types.FormatRGBA8Unorm {
			tex, err = img.device.CreateRenderTarget(size, types.FormatRGBA8Unorm, levels)
			if err != nil {
				return &hal.AllocationError{Resource: "render target", Size: size.String(), Cause: err}
			}
			resolved = types.FormatRGBA8Unorm
		} else {
			return &hal.AllocationError{Resource: "render target", Size: size.String(), Cause: err}
		}
	}

	if img.tex.Backend != nil {
		img.device.DestroyTexture(img.tex)
	}
	img.tex = tex
	img.size = size
	img.format = resolved
	img.levels = levels
	return nil
}

// Clear clears the image to opaque black.
func (img *Image) Clear() error {
	return img.device.ClearColor(img.tex, types.OpaqueBlack)
}

// CopyFrom resizes this image to match src (if needed) and blits src's
// pixels into it.
func (img *Image) CopyFrom(src types.ImageHandle) error {
	if err := img.Resize(src.Size, src.Format); err != nil {
		return err
	}
	return img.device.CopyInto(img.tex, hal.Texture{Backend: src.Backend})
}

// AsSampled views this image as a sampled input without transferring
// ownership.
func (img *Image) AsSampled(key types.SamplerKey) types.SampledInput {
	return types.SampledInput{
		Image: types.ImageHandle{
			Backend: img.tex.Backend,
			Size:    img.size,
			Format:  img.format,
			Levels:  img.levels,
		},
		Sample: key,
	}
}

// GenerateMipmaps produces img.Levels()-1 downsampled mip levels.
func (img *Image) GenerateMipmaps() error {
	if img.levels <= 1 {
		return nil
	}
	return img.device.GenerateMipmaps(img.tex, img.levels)
}

// Destroy releases the backing image. The Image must not be used again.
func (img *Image) Destroy() {
	if img.tex.Backend != nil {
		img.device.DestroyTexture(img.tex)
		img.tex = hal.Texture{}
	}
}
