package shaderchain

import (
	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/types"
)

// Viewport is the caller-supplied final render target for one Frame
// call: a bindable render target of OutputSize, borrowed (not owned) for
// the duration of the call.
type Viewport struct {
	X, Y       int32
	OutputSize types.Size
	Output     hal.Texture
	// MVP overrides the default orthographic identity for the final
	// pass's draw; nil uses the identity matrix.
	MVP *types.Mat4
}
