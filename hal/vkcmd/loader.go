package vkcmd

import "unsafe"

// ProcAddr resolves a Vulkan device-level entry point by name, mirroring
// the teacher's hal/vulkan vkGetDeviceProcAddr-based loader.
type ProcAddr func(name string) unsafe.Pointer

// Handles are the Vulkan objects the host has already created. This
// backend never creates or destroys any of them.
type Handles struct {
	Device        unsafe.Pointer
	Queue         unsafe.Pointer
	CommandBuffer unsafe.Pointer
	GetProcAddr   ProcAddr
}

var installed Handles

// SetHandles installs the Vulkan objects Open uses to build a Device.
// Must be called once, before the first hal.OpenDevice(hal.VariantExplicit).
func SetHandles(h Handles) {
	installed = h
}
