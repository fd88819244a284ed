// Package types defines the backend-agnostic value types shared across the
// filter chain engine: pixel sizes, wrap/filter modes, texture formats, and
// scale rules.
//
// These types carry no backend handles beyond the opaque `any` slot in
// ImageHandle; every concrete backend (package hal and its implementations)
// fills that slot with its own handle type.
package types
