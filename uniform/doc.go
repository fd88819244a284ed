// Package uniform implements the CPU-side uniform storage (two byte
// buffers, one UBO-backed and one push-constant-backed, with typed
// bounds-checked writers) and the per-pass ring bookkeeping that picks
// which slot of a backend's GPU-visible buffer ring each frame writes, so
// that in-flight frames do not hit write-after-read hazards. The ring
// itself owns no GPU buffers.
package uniform
