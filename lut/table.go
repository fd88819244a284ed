package lut

import (
	"fmt"

	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/preset"
	"github.com/gogpu/shaderchain/types"
)

// Decoded is a decoded image's raw pixels plus its size. LUT pixels are
// always linear RGBA8; no sRGB conversion is applied during decode.
type Decoded struct {
	Pixels []byte
	Size   types.Size
}

// Decoder decodes an image file into raw pixels. The default
// implementation lives in internal/imagedecode; this interface is the
// external collaborator contract a caller may substitute.
type Decoder interface {
	Decode(path string) (Decoded, error)
}

// Entry is one loaded LUT: its texture handle and the sampler parameters
// the preset declared for it.
type Entry struct {
	Texture hal.Texture
	Size    types.Size
	Sample  types.SamplerKey
}

// Table is the immutable, indexed collection of LUTs loaded at chain
// construction. Indices match the preset's texture list.
type Table struct {
	device  hal.Device
	entries []Entry
}

// Build decodes and uploads every configured LUT, generating mip chains
// for entries that request them. On any decode or allocation failure, no
// partial Table is left allocated: every texture created so far is
// destroyed and the error is returned.
func Build(device hal.Device, decoder Decoder, configs []preset.LutConfig) (*Table, error) {
	t := &Table{device: device, entries: make([]Entry, 0, len(configs))}
	for i, cfg := range configs {
		decoded, err := decoder.Decode(cfg.Path)
		if err != nil {
			t.Destroy()
			return nil, fmt.Errorf("lut: decode entry %d (%s): %w", i, cfg.Path, err)
		}

		levels := uint32(1)
		if cfg.Mipmap {
			levels = decoded.Size.MipLevels()
		}

		tex, err := device.CreateTexture(decoded.Size, types.FormatRGBA8Unorm, levels)
		if err != nil {
			t.Destroy()
			return nil, &hal.AllocationError{Resource: "lut texture", Size: decoded.Size.String(), Cause: err}
		}

		if err := device.UploadTexture(tex, decoded.Size, decoded.Pixels); err != nil {
			device.DestroyTexture(tex)
			t.Destroy()
			return nil, fmt.Errorf("lut: upload entry %d (%s): %w", i, cfg.Path, err)
		}

		if levels > 1 {
			if err := device.GenerateMipmaps(tex, levels); err != nil {
				device.DestroyTexture(tex)
				t.Destroy()
				return nil, fmt.Errorf("lut: generate mipmaps for entry %d: %w", i, err)
			}
		}

		mip := types.MipFilterNearest
		if cfg.Mipmap {
			mip = types.MipFilterLinear
		}

		t.entries = append(t.entries, Entry{
			Texture: tex,
			Size:    decoded.Size,
			Sample:  types.SamplerKey{Wrap: cfg.Wrap, Filter: cfg.Filter, Mip: mip},
		})
	}
	return t, nil
}

// At returns the entry at index, or the zero Entry and false if index is
// out of range.
func (t *Table) At(index int) (Entry, bool) {
	if index < 0 || index >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[index], true
}

// Len reports how many LUTs were loaded.
func (t *Table) Len() int { return len(t.entries) }

// Destroy releases every loaded texture.
func (t *Table) Destroy() {
	for _, e := range t.entries {
		t.device.DestroyTexture(e.Texture)
	}
	t.entries = nil
}
