// Package noop provides a no-operation backend for the filter chain engine.
//
// It implements hal.Device without touching any real GPU: texture handles
// are just incrementing counters, a sampler handle is its SamplerKey, and
// draws and copies are no-ops. It exists for testing the orchestrator, pass, and ring logic
// without a GPU context.
package noop
