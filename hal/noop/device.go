package noop

import (
	"sync/atomic"

	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/types"
)

// Device is a hal.Device that performs no GPU work. Texture and sampler
// handles are distinct only for bookkeeping: comparing two Texture values
// by their Backend field tells test code whether two handles were meant
// to be the same resource.
type Device struct {
	nextHandle atomic.Uint64
}

func (d *Device) Variant() hal.Variant { return hal.VariantNoop }

func (d *Device) newHandle() uint64 {
	return d.nextHandle.Add(1)
}

func (d *Device) CreateTexture(size types.Size, format types.TextureFormat, levels uint32) (hal.Texture, error) {
	return hal.Texture{Backend: d.newHandle()}, nil
}

func (d *Device) DestroyTexture(hal.Texture) {}

func (d *Device) UploadTexture(tex hal.Texture, size types.Size, pixels []byte) error { return nil }

func (d *Device) CreateRenderTarget(size types.Size, format types.TextureFormat, levels uint32) (hal.Texture, error) {
	return hal.Texture{Backend: d.newHandle()}, nil
}

func (d *Device) BindRenderTarget(target hal.RenderTargetDescriptor) error { return nil }

func (d *Device) ClearColor(target hal.Texture, color types.Color) error { return nil }

func (d *Device) CopyInto(dst, src hal.Texture) error { return nil }

func (d *Device) GenerateMipmaps(tex hal.Texture, levels uint32) error { return nil }

func (d *Device) SamplerFor(key types.SamplerKey) (hal.Sampler, error) {
	return hal.Sampler{Backend: key}, nil
}

func (d *Device) SetUniform(loc hal.Location, bytes []byte) error { return nil }

func (d *Device) BindSampled(binding uint32, tex hal.Texture, samp hal.Sampler, stages hal.ShaderStages) error {
	return nil
}

func (d *Device) DrawQuad(kind hal.QuadKind) error { return nil }
