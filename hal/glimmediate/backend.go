package glimmediate

import "github.com/gogpu/shaderchain/hal"

// Backend opens Devices against the GL entry points resolved through the
// loader installed by SetProcAddressLoader. Call hal.RegisterBackend(
// Backend{}) once a loader is installed (typically from the host's own
// init, after it has made a GL context current).
type Backend struct{}

func (Backend) Variant() hal.Variant { return hal.VariantImmediate }

func (Backend) Open() (hal.Device, error) {
	if procLoader == nil {
		return nil, hal.ErrBackendAPI
	}
	ctx, err := newContext(procLoader)
	if err != nil {
		return nil, err
	}
	return &Device{
		gl:       ctx,
		samplers: make(map[uint32]struct{}),
	}, nil
}
