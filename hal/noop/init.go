package noop

import "github.com/gogpu/shaderchain/hal"

// init registers the noop backend with the HAL registry.
func init() {
	hal.RegisterBackend(Backend{})
}
