// Package glimmediate implements hal.Device against an OpenGL/GLES
// context (the "immediate"/global-state backend shape): every bind call
// mutates global context state, and a render target is a framebuffer
// object with one color attachment.
//
// This package does not create a window, GL context, or platform loader
// (no own window system, per this engine's scope) — the host embeds an
// existing current GL context and supplies a function-pointer loader via
// SetProcAddressLoader before calling hal.OpenDevice(hal.VariantImmediate).
// CreateRenderTarget's framebuffer-incomplete fallback-and-retry and the
// overall method shape are grounded on librashader-runtime-gl46's
// FilterChain (texture.rs, filter_chain.rs).
package glimmediate
