// Package scale implements the scaling resolver: a pure function mapping a
// pass's declared scale rule and the frame's reference sizes to a concrete
// output size. Grounded on librashader's Scale2D/ViewportSize resolution
// (original_source/librashader-runtime-vk/src/texture.rs OwnedImage::scale,
// which calls source.image.size.scale_viewport(scaling, viewport_size)).
package scale

import "github.com/gogpu/shaderchain/types"

// References bundles the three sizes a scale rule may be relative to.
type References struct {
	Source   types.Size // previous pass's output, or the frame's input for pass 0
	Viewport types.Size // caller's final render target size
	Original types.Size // the frame's original input image, independent of pass index
}

// Resolve computes the output size for rule given refs. Each axis is
// resolved independently; results are never less than 1 in either
// dimension.
func Resolve(rule types.ScaleRule, refs References) types.Size {
	return types.Size{
		Width:  resolveAxis(rule.X, refs.Source.Width, refs.Viewport.Width, refs.Original.Width),
		Height: resolveAxis(rule.Y, refs.Source.Height, refs.Viewport.Height, refs.Original.Height),
	}
}

func resolveAxis(axis types.ScaleAxis, source, viewport, original uint32) uint32 {
	switch axis.Kind {
	case types.ScaleAbsolute:
		return clampAtLeastOne(axis.Factor)
	case types.ScaleViewport:
		return clampAtLeastOne(axis.Factor * float64(viewport))
	case types.ScaleOriginal:
		return clampAtLeastOne(axis.Factor * float64(original))
	case types.ScaleSource:
		fallthrough
	default:
		return clampAtLeastOne(axis.Factor * float64(source))
	}
}

// clampAtLeastOne rounds half-away-from-zero (valid since every caller
// passes a nonnegative value) and clamps the result to at least 1.
func clampAtLeastOne(v float64) uint32 {
	r := uint32(v + 0.5)
	if r < 1 {
		return 1
	}
	return r
}
