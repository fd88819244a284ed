package shaderchain

import (
	"errors"
	"os"

	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/lut"
	"github.com/gogpu/shaderchain/pass"
	"github.com/gogpu/shaderchain/preset"
	"github.com/gogpu/shaderchain/rendertarget"
	"github.com/gogpu/shaderchain/sampler"
	"github.com/gogpu/shaderchain/scale"
	"github.com/gogpu/shaderchain/semantics"
	"github.com/gogpu/shaderchain/types"
	"github.com/gogpu/shaderchain/uniform"
)

// Chain owns every pool a loaded preset needs — passes, output/feedback
// images, the history ring, the LUT table, the sampler cache — and drives
// the per-frame execution algorithm. A Chain is not safe for concurrent
// use; see package hal's thread-safety note.
type Chain struct {
	device hal.Device

	passes        []*pass.Pass
	passesEnabled int

	samplers *sampler.Cache
	luts     *lut.Table

	outputImages   []*rendertarget.Image
	feedbackImages []*rendertarget.Image
	history        *historyRing

	parameters map[string]float32

	firstFilter types.FilterMode
	firstWrap   types.WrapMode
	firstMip    types.MipFilter
}

// LoadFromPath parses the preset at path and loads a Chain from it.
func LoadFromPath(device hal.Device, parser preset.Parser, compiler semantics.Compiler, decoder lut.Decoder, path string, opts LoadOptions) (*Chain, error) {
	parsed, err := parser.ParseFile(path)
	if err != nil {
		return nil, &LoadError{Kind: KindPresetParse, Pass: -1, Cause: err}
	}
	return LoadFromPreset(device, compiler, decoder, parsed, opts)
}

// LoadFromPreset builds a Chain from an already-parsed preset. No partial
// chain is left allocated if construction fails partway through.
func LoadFromPreset(device hal.Device, compiler semantics.Compiler, decoder lut.Decoder, p *preset.Preset, opts LoadOptions) (*Chain, error) {
	reflections := make([]*semantics.Reflection, len(p.Passes))
	programs := make([]hal.Program, len(p.Passes))

	for i, cfg := range p.Passes {
		src, err := os.ReadFile(cfg.ShaderPath)
		if err != nil {
			return nil, &LoadError{Kind: KindShaderCompile, Pass: i, Cause: err}
		}
		program, reflection, err := compiler.Compile(string(src))
		if err != nil {
			return nil, &LoadError{Kind: KindShaderCompile, Pass: i, Cause: err}
		}
		if reflection == nil {
			return nil, &LoadError{Kind: KindShaderReflect, Pass: i, Cause: errNilReflection}
		}
		programs[i] = program
		reflections[i] = reflection
	}

	samplers := sampler.New(device)

	luts, err := lut.Build(device, decoder, p.Textures)
	if err != nil {
		return nil, &LoadError{Kind: KindLutLoad, Pass: -1, Cause: err}
	}

	passes := make([]*pass.Pass, len(p.Passes))
	for i := range p.Passes {
		passes[i] = pass.New(device, samplers, i, programs[i], reflections[i], p.Passes[i])
	}

	outputImages := make([]*rendertarget.Image, len(passes))
	feedbackImages := make([]*rendertarget.Image, len(passes))
	destroyImages := func() {
		for _, img := range outputImages {
			if img != nil {
				img.Destroy()
			}
		}
		for _, img := range feedbackImages {
			if img != nil {
				img.Destroy()
			}
		}
	}
	for i := range passes {
		out, err := rendertarget.New(device, 0)
		if err != nil {
			destroyImages()
			luts.Destroy()
			return nil, &LoadError{Kind: KindBackendAllocation, Pass: i, Cause: err}
		}
		outputImages[i] = out
		fb, err := rendertarget.New(device, 0)
		if err != nil {
			destroyImages()
			luts.Destroy()
			return nil, &LoadError{Kind: KindBackendAllocation, Pass: i, Cause: err}
		}
		feedbackImages[i] = fb
	}

	depth := historyDepth(reflections)
	history, err := newHistoryRing(device, depth)
	if err != nil {
		destroyImages()
		luts.Destroy()
		return nil, &LoadError{Kind: KindBackendAllocation, Pass: -1, Cause: err}
	}

	parameters := make(map[string]float32, len(p.Parameters))
	for _, param := range p.Parameters {
		parameters[param.Name] = param.Default
	}

	c := &Chain{
		device:         device,
		passes:         passes,
		passesEnabled:  len(passes),
		samplers:       samplers,
		luts:           luts,
		outputImages:   outputImages,
		feedbackImages: feedbackImages,
		history:        history,
		parameters:     parameters,
		firstFilter:    types.FilterLinear,
		firstWrap:      types.WrapClamp,
		firstMip:       types.MipFilterLinear,
	}
	if len(p.Passes) > 0 {
		c.firstFilter = p.Passes[0].Filter
		c.firstWrap = p.Passes[0].Wrap
		c.firstMip = p.Passes[0].MipFilter
	}
	return c, nil
}

var errNilReflection = errors.New("shaderchain: compiler returned a nil reflection")

func historyDepth(reflections []*semantics.Reflection) int {
	maxK := 0
	for _, r := range reflections {
		for _, m := range r.Uniforms {
			if m.Binding.Tag == semantics.SemanticOriginalHistory && int(m.Binding.Index) > maxK {
				maxK = int(m.Binding.Index)
			}
		}
		for _, tb := range r.Textures {
			if tb.Tag == semantics.SemanticOriginalHistory && int(tb.Index) > maxK {
				maxK = int(tb.Index)
			}
		}
	}
	h := maxK + 1
	if h <= 1 {
		return 0
	}
	return h
}

// PassesEnabled reports how many leading passes currently run.
func (c *Chain) PassesEnabled() int { return c.passesEnabled }

// SetPassesEnabled clamps n to [0, pass count] and sets how many leading
// passes Frame runs. Trailing passes are disabled, never removed.
func (c *Chain) SetPassesEnabled(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(c.passes) {
		n = len(c.passes)
	}
	c.passesEnabled = n
}

// SetParameter overrides a declared parameter's value.
func (c *Chain) SetParameter(name string, value float32) {
	c.parameters[name] = value
}

// Destroy releases every owned resource. The Chain must not be used
// again.
func (c *Chain) Destroy() {
	for _, img := range c.outputImages {
		img.Destroy()
	}
	for _, img := range c.feedbackImages {
		img.Destroy()
	}
	c.history.destroy()
	c.luts.Destroy()
}

func (c *Chain) firstKey() types.SamplerKey {
	return types.SamplerKey{Wrap: c.firstWrap, Filter: c.firstFilter, Mip: c.firstMip}
}

// Frame renders one frame of input into viewport.
func (c *Chain) Frame(count uint64, viewport Viewport, input types.ImageHandle, opts FrameOptions) error {
	active := c.passes[:c.passesEnabled]
	if len(active) == 0 {
		return nil
	}

	if opts.ClearHistory {
		if err := c.history.clear(); err != nil {
			return &FrameError{Kind: KindBackendAPI, Cause: err}
		}
	}

	historySamples := c.history.sampledAges(max0(c.history.depth()-1), c.firstKey())

	feedbackSamples := make([]types.SampledInput, len(active))
	for i, ps := range active {
		key := types.SamplerKey{Wrap: ps.Config().Wrap, Filter: ps.Config().Filter, Mip: ps.Config().MipFilter}
		feedbackSamples[i] = c.feedbackImages[i].AsSampled(key)
	}

	original := types.SampledInput{Image: input, Sample: c.firstKey()}

	sourceSize := input.Size
	for i, ps := range active {
		rule := ps.Config().Scale
		outSize := scale.Resolve(rule, scale.References{Source: sourceSize, Viewport: viewport.OutputSize, Original: input.Size})
		format := ps.Config().Format
		if err := c.outputImages[i].Resize(outSize, format); err != nil {
			return &FrameError{Kind: KindBackendAllocation, Cause: err}
		}
		if err := c.feedbackImages[i].Resize(outSize, format); err != nil {
			return &FrameError{Kind: KindBackendAllocation, Cause: err}
		}
		sourceSize = outSize
	}

	lutEntries := make([]lut.Entry, c.luts.Len())
	for i := 0; i < c.luts.Len(); i++ {
		lutEntries[i], _ = c.luts.At(i)
	}

	passOutputs := make([]types.SampledInput, max0(len(active)-1))
	ctx := pass.FrameContext{
		Count:         count,
		Direction:     opts.direction(),
		ViewportSize:  viewport.OutputSize,
		ViewportMVP:   viewport.MVP,
		OriginalSize:  input.Size,
		Original:      original,
		History:       historySamples,
		PassOutputs:   passOutputs,
		PassFeedbacks: feedbackSamples,
		Luts:          lutEntries,
		Parameters:    c.parameters,
	}

	source := original
	for i := 0; i < len(active)-1; i++ {
		ctx.Source = source
		target := pass.Target{Texture: c.outputImages[i].Handle(), Size: c.outputImages[i].Size()}
		if err := active[i].Draw(ctx, target); err != nil {
			return &FrameError{Kind: drawErrorKind(err), Cause: err}
		}
		cfg := active[i].Config()
		source = c.outputImages[i].AsSampled(types.SamplerKey{Wrap: cfg.Wrap, Filter: cfg.Filter, Mip: cfg.MipFilter})
		passOutputs[i] = source
	}

	last := active[len(active)-1]
	lastCfg := last.Config()
	source.Sample.Filter = lastCfg.Filter
	source.Sample.Mip = lastCfg.MipFilter
	ctx.Source = source
	finalTarget := pass.Target{
		Texture:    viewport.Output,
		Size:       viewport.OutputSize,
		IsViewport: true,
		X:          viewport.X,
		Y:          viewport.Y,
	}
	if err := last.Draw(ctx, finalTarget); err != nil {
		return &FrameError{Kind: drawErrorKind(err), Cause: err}
	}

	for i := range active {
		c.outputImages[i], c.feedbackImages[i] = c.feedbackImages[i], c.outputImages[i]
	}

	if c.history.depth() > 0 {
		if err := c.history.push(input); err != nil {
			return &FrameError{Kind: KindBackendAllocation, Cause: err}
		}
	}

	return nil
}

// drawErrorKind classifies an error returned from pass.Pass.Draw: an
// out-of-range uniform write gets its own FrameError kind so callers can
// tell it apart from a backend/driver failure.
func drawErrorKind(err error) Kind {
	if uniform.IsOffsetError(err) {
		return KindUniformOffsetOutOfRange
	}
	return KindBackendAPI
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
