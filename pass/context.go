package pass

import (
	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/lut"
	"github.com/gogpu/shaderchain/types"
)

// FrameContext is the state shared by every pass drawn within one call to
// the orchestrator's frame method.
type FrameContext struct {
	Count        uint64
	Direction    int32
	ViewportSize types.Size
	ViewportMVP  *types.Mat4
	OriginalSize types.Size

	Original types.SampledInput
	// Source is this pass's immediate input: the previous pass's output
	// (or the original input image, for pass 0). Before drawing the last
	// pass the orchestrator overrides Source.Sample's Filter and Mip with
	// the final pass's own; Wrap keeps the previous pass's value.
	Source types.SampledInput

	// History holds OriginalHistory[1..H-1] in order: History[0] is
	// OriginalHistory[1], History[k-1] is OriginalHistory[k].
	History []types.SampledInput

	// PassOutputs and PassFeedbacks are indexed by pass index; an entry
	// is only meaningful for indices below the pass currently drawing
	// (PassOutputs) or for feedback-enabled passes (PassFeedbacks).
	PassOutputs   []types.SampledInput
	PassFeedbacks []types.SampledInput

	Luts       []lut.Entry
	Parameters map[string]float32
}

// Target describes where a pass's quad is drawn: either an intermediate
// pass's own output image, or the caller's viewport.
type Target struct {
	Texture    hal.Texture
	Size       types.Size
	IsViewport bool
	X, Y       int32
}
