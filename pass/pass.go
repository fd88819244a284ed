package pass

import (
	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/preset"
	"github.com/gogpu/shaderchain/sampler"
	"github.com/gogpu/shaderchain/semantics"
	"github.com/gogpu/shaderchain/types"
	"github.com/gogpu/shaderchain/uniform"
)

// Pass is one compiled shader program plus the reflection-derived
// bindings needed to drive it every frame.
type Pass struct {
	index      int
	device     hal.Device
	samplers   *sampler.Cache
	program    hal.Program
	reflection *semantics.Reflection
	config     preset.PassConfig

	storage *uniform.Storage
	ring    *uniform.Ring

	uboLocation  hal.Location
	pushLocation hal.Location
}

// New builds a Pass from a compiled program, its reflection, and the
// preset's declared configuration for it.
func New(device hal.Device, samplers *sampler.Cache, index int, program hal.Program, reflection *semantics.Reflection, config preset.PassConfig) *Pass {
	var uboSize, pushSize int
	if reflection.UBO != nil {
		uboSize = int(reflection.UBO.Size)
	}
	if reflection.PushConstant != nil {
		pushSize = int(reflection.PushConstant.Size)
	}

	p := &Pass{
		index:      index,
		device:     device,
		samplers:   samplers,
		program:    program,
		reflection: reflection,
		config:     config,
		storage:    uniform.NewStorage(uboSize, pushSize),
	}
	if reflection.UBO != nil {
		p.ring = uniform.NewRing()
		p.uboLocation = hal.Location{Backend: reflection.UBO.Binding, Stages: hal.StageVertex | hal.StageFragment}
	}
	if reflection.PushConstant != nil {
		p.pushLocation = hal.Location{Backend: "push", Stages: hal.StageVertex | hal.StageFragment}
	}
	return p
}

// Index reports this pass's position in the chain.
func (p *Pass) Index() int { return p.index }

// Config returns the preset configuration this pass was built from.
func (p *Pass) Config() preset.PassConfig { return p.config }

func sizeVec4(s types.Size) (w, h, rw, rh float32) {
	w, h = float32(s.Width), float32(s.Height)
	rw, rh = 1, 1
	if s.Width > 0 {
		rw = 1 / w
	}
	if s.Height > 0 {
		rh = 1 / h
	}
	return
}

func (p *Pass) frameCount(ctx FrameContext) uint64 {
	if p.config.FrameCountMod > 0 {
		return ctx.Count % uint64(p.config.FrameCountMod)
	}
	return ctx.Count
}

// writeUniforms fills the CPU-side storage with every member reflection
// declared, writing zeros for semantics with no resolvable source.
func (p *Pass) writeUniforms(ctx FrameContext, target Target) error {
	for _, m := range p.reflection.Uniforms {
		kind := uniform.BlockUBO
		if m.Offset.Kind == semantics.OffsetPushConstant {
			kind = uniform.BlockPush
		}
		off := m.Offset.Byte

		switch m.Binding.Kind {
		case semantics.BindingParameter:
			v := ctx.Parameters[m.Binding.Name]
			if err := p.storage.WriteFloat32(kind, off, v); err != nil {
				return err
			}

		case semantics.BindingSemanticVariable:
			switch m.Binding.Tag {
			case semantics.SemanticMVP:
				mvp := types.Identity4
				if target.IsViewport && ctx.ViewportMVP != nil {
					mvp = *ctx.ViewportMVP
				}
				if err := p.storage.WriteMat4(kind, off, mvp); err != nil {
					return err
				}
			case semantics.SemanticOutputSize:
				w, h, rw, rh := sizeVec4(target.Size)
				if err := p.storage.WriteVec4(kind, off, w, h, rw, rh); err != nil {
					return err
				}
			case semantics.SemanticFinalViewportSize:
				w, h, rw, rh := sizeVec4(ctx.ViewportSize)
				if err := p.storage.WriteVec4(kind, off, w, h, rw, rh); err != nil {
					return err
				}
			case semantics.SemanticOriginalSize:
				w, h, rw, rh := sizeVec4(ctx.OriginalSize)
				if err := p.storage.WriteVec4(kind, off, w, h, rw, rh); err != nil {
					return err
				}
			case semantics.SemanticSourceSize:
				w, h, rw, rh := sizeVec4(ctx.Source.Image.Size)
				if err := p.storage.WriteVec4(kind, off, w, h, rw, rh); err != nil {
					return err
				}
			case semantics.SemanticFrameCount:
				if err := p.storage.WriteInt32(kind, off, int32(p.frameCount(ctx))); err != nil {
					return err
				}
			case semantics.SemanticFrameDirection:
				if err := p.storage.WriteInt32(kind, off, ctx.Direction); err != nil {
					return err
				}
			}

		case semantics.BindingTextureSize:
			var src types.SampledInput
			var ok bool
			switch m.Binding.Tag {
			case semantics.SemanticOriginalHistory:
				src, ok = historyAt(ctx.History, m.Binding.Index)
			case semantics.SemanticPassOutput:
				src, ok = indexedAt(ctx.PassOutputs, m.Binding.Index)
			case semantics.SemanticPassFeedback:
				src, ok = indexedAt(ctx.PassFeedbacks, m.Binding.Index)
			}
			if ok {
				w, h, rw, rh := sizeVec4(src.Image.Size)
				if err := p.storage.WriteVec4(kind, off, w, h, rw, rh); err != nil {
					return err
				}
			} else {
				if err := p.storage.WriteVec4(kind, off, 0, 0, 0, 0); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func historyAt(history []types.SampledInput, k uint32) (types.SampledInput, bool) {
	if k < 1 {
		return types.SampledInput{}, false
	}
	i := int(k) - 1
	if i < 0 || i >= len(history) {
		return types.SampledInput{}, false
	}
	return history[i], true
}

func indexedAt(items []types.SampledInput, i uint32) (types.SampledInput, bool) {
	if int(i) < 0 || int(i) >= len(items) {
		return types.SampledInput{}, false
	}
	return items[int(i)], true
}

// bindTextures satisfies every texture binding reflection declared,
// falling back to the frame's original input when a referenced history
// or pass slot does not yet exist (e.g. history not yet filled, or a
// feedback pass on its first frame).
func (p *Pass) bindTextures(ctx FrameContext) error {
	for _, tb := range p.reflection.Textures {
		var src types.SampledInput
		switch tb.Tag {
		case semantics.SemanticOriginal:
			src = ctx.Original
		case semantics.SemanticSource:
			src = ctx.Source
		case semantics.SemanticOriginalHistory:
			if v, ok := historyAt(ctx.History, tb.Index); ok {
				src = v
			} else {
				src = ctx.Original
			}
		case semantics.SemanticPassOutput:
			if v, ok := indexedAt(ctx.PassOutputs, tb.Index); ok {
				src = v
			} else {
				src = ctx.Original
			}
		case semantics.SemanticPassFeedback:
			if v, ok := indexedAt(ctx.PassFeedbacks, tb.Index); ok {
				src = v
			} else {
				src = ctx.Original
			}
		case semantics.SemanticUser:
			if int(tb.Index) >= 0 && int(tb.Index) < len(ctx.Luts) {
				entry := ctx.Luts[tb.Index]
				src = types.SampledInput{
					Image:  types.ImageHandle{Backend: entry.Texture.Backend, Size: entry.Size, Format: types.FormatRGBA8Unorm},
					Sample: entry.Sample,
				}
			} else {
				src = ctx.Original
			}
		default:
			src = ctx.Original
		}

		samp, err := p.samplers.Get(src.Sample)
		if err != nil {
			return err
		}
		if err := p.device.BindSampled(tb.BindingPoint, hal.Texture{Backend: src.Image.Backend}, samp, hal.StageFragment); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders this pass: writes every reflected uniform, binds every
// reflected texture, uploads the UBO/push blocks, binds target, and
// issues the quad. If the pass's mipmap flag is set, mipmaps are
// generated on target afterward.
func (p *Pass) Draw(ctx FrameContext, target Target) error {
	if err := p.writeUniforms(ctx, target); err != nil {
		return err
	}
	if err := p.bindTextures(ctx); err != nil {
		return err
	}

	if p.reflection.UBO != nil {
		slot := p.ring.Use(ctx.Count)
		loc := p.uboLocation
		loc.Backend = hal.RingSlot{Binding: p.uboLocation.Backend, Slot: slot}
		if err := p.device.SetUniform(loc, p.storage.Bytes(uniform.BlockUBO)); err != nil {
			return err
		}
	}
	if p.reflection.PushConstant != nil {
		if err := p.device.SetUniform(p.pushLocation, p.storage.Bytes(uniform.BlockPush)); err != nil {
			return err
		}
	}

	desc := hal.RenderTargetDescriptor{
		Texture:    target.Texture,
		Size:       target.Size,
		IsViewport: target.IsViewport,
		X:          target.X,
		Y:          target.Y,
	}
	if target.IsViewport {
		desc.MVP = ctx.ViewportMVP
	}
	if err := p.device.BindRenderTarget(desc); err != nil {
		return err
	}

	kind := hal.QuadIntermediate
	if target.IsViewport {
		kind = hal.QuadFinal
	}
	if err := p.device.DrawQuad(kind); err != nil {
		return err
	}

	if p.config.Mipmap {
		levels := target.Size.MipLevels()
		if err := p.device.GenerateMipmaps(target.Texture, levels); err != nil {
			return err
		}
	}
	return nil
}
