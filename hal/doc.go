// Package hal is the backend abstraction for the filter chain engine: the
// capability set a graphics backend must provide (texture/render-target
// creation, uniform and sampled-texture binding, quad draw, mipmap
// generation) so that the orchestrator's per-frame algorithm never needs to
// know whether it is driving an immediate-mode state machine or an
// explicit command-buffer API.
//
// # Backend registration
//
// Backends register themselves by Variant using RegisterBackend, typically
// from an init() function in the backend package:
//
//	device, err := hal.OpenDevice(hal.VariantImmediate)
//
// # Design principles
//
// The HAL prioritizes portability over validation: most methods assume the
// caller (the orchestrator) has already enforced its own invariants
// (managed image size/format agreement, declared binding completeness).
// Errors report allocation failure, a still-incomplete framebuffer after
// the one permitted retry, a failed backend call, or a handle that does
// not belong to the backend it was passed to.
//
// # Thread safety
//
// A Device is not safe for concurrent use: one chain instance, and
// therefore one Device, is driven from a single thread. Backend
// registration (RegisterBackend/OpenDevice) is safe for concurrent use.
package hal
