// Package preset declares the shapes produced by preset file parsing — an
// external collaborator. The orchestrator depends only on these types and
// the Parser interface; no parser implementation lives in this
// module.
package preset
