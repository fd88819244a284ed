// Package semantics declares the shapes produced by shader compilation
// and reflection — an external collaborator. A pass (package pass) is
// built from a Reflection plus a compiled hal.Program; neither the
// compiler nor the cross-compilation it performs lives in this module.
package semantics
