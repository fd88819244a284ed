package glimmediate

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/types"
)

// texHandle is the backend payload stored in hal.Texture.Backend: a GL
// texture name, plus the framebuffer object wrapping it when this texture
// was created as a render target (fbo == 0 for sampled-only textures).
type texHandle struct {
	id  uint32
	fbo uint32
}

// Device implements hal.Device against an OpenGL/GLES context.
type Device struct {
	gl       *context
	samplers map[uint32]struct{}
}

func (d *Device) Variant() hal.Variant { return hal.VariantImmediate }

func (d *Device) CreateTexture(size types.Size, format types.TextureFormat, levels uint32) (hal.Texture, error) {
	return d.allocate(size, format, false)
}

func (d *Device) DestroyTexture(tex hal.Texture) {
	h, ok := tex.Backend.(texHandle)
	if !ok {
		return
	}
	d.gl.deleteOne(d.gl.deleteTextures, h.id)
	if h.fbo != 0 {
		d.gl.deleteOne(d.gl.deleteFramebuffers, h.fbo)
	}
}

func (d *Device) UploadTexture(tex hal.Texture, size types.Size, pixels []byte) error {
	h, ok := tex.Backend.(texHandle)
	if !ok {
		return hal.ErrBackendAPI
	}
	if len(pixels) == 0 {
		return nil
	}
	d.gl.bindTexture2D(h.id)
	d.gl.texSubImage2DRGBA8(int32(size.Width), int32(size.Height), unsafe.Pointer(&pixels[0]))
	return nil
}

func (d *Device) CreateRenderTarget(size types.Size, format types.TextureFormat, levels uint32) (hal.Texture, error) {
	tex, err := d.allocate(size, format, true)
	if err != nil {
		return hal.Texture{}, err
	}
	status := d.gl.checkFramebuffer(glFramebuffer)
	if status != glFramebufferComplete {
		d.DestroyTexture(tex)
		if format != types.FormatRGBA8Unorm {
			hal.Logger().Warn("glimmediate: framebuffer incomplete, retrying with RGBA8",
				"format", format.String(), "size", size.String())
			return d.CreateRenderTarget(size, types.FormatRGBA8Unorm, levels)
		}
		return hal.Texture{}, &hal.AllocationError{
			Resource: "render target",
			Size:     size.String(),
			Cause:    fmt.Errorf("framebuffer status 0x%x", status),
		}
	}
	return tex, nil
}

func (d *Device) allocate(size types.Size, format types.TextureFormat, asRenderTarget bool) (hal.Texture, error) {
	if format == types.FormatUnknown {
		format = types.FormatRGBA8Unorm
	}
	id := d.gl.genOne(d.gl.genTextures)
	d.gl.bindTexture2D(id)
	d.gl.texImage2DRGBA8(int32(size.Width), int32(size.Height), nil)

	var fbo uint32
	if asRenderTarget {
		fbo = d.gl.genOne(d.gl.genFramebuffers)
		d.gl.bindFramebufferTarget(glFramebuffer, fbo)
		d.gl.framebufferTexture(glFramebuffer, id)
	}
	return hal.Texture{Backend: texHandle{id: id, fbo: fbo}}, nil
}

func (d *Device) BindRenderTarget(target hal.RenderTargetDescriptor) error {
	h, ok := target.Texture.Backend.(texHandle)
	if !ok || h.fbo == 0 {
		// Viewport target: the host's own default framebuffer (name 0).
		d.gl.bindFramebufferTarget(glFramebuffer, 0)
		return nil
	}
	d.gl.bindFramebufferTarget(glFramebuffer, h.fbo)
	return nil
}

func (d *Device) ClearColor(target hal.Texture, color types.Color) error {
	h, ok := target.Backend.(texHandle)
	if ok && h.fbo != 0 {
		d.gl.bindFramebufferTarget(glFramebuffer, h.fbo)
	}
	d.gl.setClearColor(color.R, color.G, color.B, color.A)
	d.gl.clearColorBuffer()
	return nil
}

func (d *Device) CopyInto(dst, src hal.Texture) error {
	sh, sok := src.Backend.(texHandle)
	dh, dok := dst.Backend.(texHandle)
	if !sok || !dok {
		return hal.ErrBackendAPI
	}
	d.gl.bindFramebufferTarget(glReadFramebuffer, sh.fbo)
	d.gl.bindFramebufferTarget(glDrawFramebuffer, dh.fbo)
	d.gl.blit(0, 0)
	return nil
}

func (d *Device) GenerateMipmaps(tex hal.Texture, levels uint32) error {
	h, ok := tex.Backend.(texHandle)
	if !ok {
		return hal.ErrBackendAPI
	}
	d.gl.bindTexture2D(h.id)
	d.gl.generateMipmapTex()
	return nil
}

func (d *Device) SamplerFor(key types.SamplerKey) (hal.Sampler, error) {
	id := d.gl.genOne(d.gl.genSamplers)
	filter := int32(glLinear)
	if key.Filter == types.FilterNearest {
		filter = glNearest
	}
	d.gl.samplerParam(id, glTextureMinFilter, filter)
	d.gl.samplerParam(id, glTextureMagFilter, filter)
	wrap := int32(glClampToEdge)
	switch key.Wrap {
	case types.WrapRepeat:
		wrap = glRepeat
	case types.WrapMirroredRepeat, types.WrapMirroredClamp:
		wrap = glMirroredRepeat
	}
	d.gl.samplerParam(id, glTextureWrapS, wrap)
	d.gl.samplerParam(id, glTextureWrapT, wrap)
	d.samplers[id] = struct{}{}
	return hal.Sampler{Backend: id}, nil
}

func (d *Device) SetUniform(loc hal.Location, bytes []byte) error {
	backend := loc.Backend
	// A global-state GL context has no ring buffer of its own: every
	// glUniform* write lands immediately, so a RingSlot's slot number is
	// irrelevant here; only the wrapped named location matters.
	if slot, ok := backend.(hal.RingSlot); ok {
		backend = slot.Binding
	}
	location, ok := backend.(int32)
	if !ok {
		return hal.ErrBackendAPI
	}
	if len(bytes) == 0 {
		return nil
	}
	count := int32(len(bytes) / 4)
	d.gl.setUniformFloats(location, count, unsafe.Pointer(&bytes[0]))
	return nil
}

func (d *Device) BindSampled(binding uint32, tex hal.Texture, samp hal.Sampler, stages hal.ShaderStages) error {
	h, ok := tex.Backend.(texHandle)
	if !ok {
		return hal.ErrBackendAPI
	}
	sampID, _ := samp.Backend.(uint32)
	unit := binding
	d.gl.setActiveTexture(unit)
	d.gl.bindTexture2D(h.id)
	d.gl.bindSamplerUnit(unit, sampID)
	return nil
}

func (d *Device) DrawQuad(kind hal.QuadKind) error {
	d.gl.drawArraysTriangleStrip()
	return nil
}
