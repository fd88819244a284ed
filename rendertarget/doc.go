// Package rendertarget implements the managed image: a render-target
// image with a size, format, and mip-level count that supports in-place
// resize, clear, blit-copy from a source image, and viewing as a sampled
// input.
//
// Resize is the load-bearing operation: the orchestrator calls it once
// per pass per frame, and it must be a no-op when the requested size and
// format already match (the "idempotent resize" property). Grounded on
// librashader's OwnedImage (librashader-runtime-vk/src/texture.rs): same
// resize/copy_from/generate_mipmaps shape, same format-fallback-and-retry
// on framebuffer-incomplete.
package rendertarget
