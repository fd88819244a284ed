// Package lut builds the immutable set of look-up textures declared by a
// preset: decode once, upload once, compute mips once. Indices into the
// resulting Table match indices into the preset's texture list.
package lut
