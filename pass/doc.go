// Package pass implements the filter pass: a compiled program plus its
// reflection-derived uniform and texture bindings, and the per-frame draw
// that satisfies every one of those bindings before issuing the quad.
//
// Grounded on librashader-runtime-gl46/src/filter_chain.rs's per-pass draw
// (built-in semantic order, history/feedback/pass-output texture binding)
// and librashader-runtime-vk/src/filter_chain.rs's equivalent for the
// explicit backend.
package pass
