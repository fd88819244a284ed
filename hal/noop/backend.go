package noop

import "github.com/gogpu/shaderchain/hal"

// Backend is the hal.Backend factory for the noop device.
type Backend struct{}

func (Backend) Variant() hal.Variant { return hal.VariantNoop }

func (Backend) Open() (hal.Device, error) {
	return &Device{}, nil
}
