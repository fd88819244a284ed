package vkcmd

import "github.com/gogpu/shaderchain/hal"

// Backend opens Devices against the handles installed by SetHandles.
type Backend struct{}

func (Backend) Variant() hal.Variant { return hal.VariantExplicit }

func (Backend) Open() (hal.Device, error) {
	if installed.GetProcAddr == nil || installed.Device == nil {
		return nil, hal.ErrBackendAPI
	}
	return &Device{
		handles:  installed,
		p:        loadProcs(installed.GetProcAddr),
		samplers: make(map[uintptr]struct{}),
	}, nil
}
