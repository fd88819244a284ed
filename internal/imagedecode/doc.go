// Package imagedecode is the default image decoder for LUT textures:
// path on disk → raw RGBA8 pixels + size. It registers png/jpeg/gif
// (standard library) and bmp (golang.org/x/image/bmp) decoders, following
// the same image.RegisterFormat + image.Decode pattern used elsewhere in
// the example corpus for loading auxiliary image assets.
//
// LUTs are always decoded into linear RGBA8 regardless of the source
// file's own color space; no automatic sRGB-to-linear conversion is
// performed; a preset's shader is responsible for any colorspace-aware
// sampling it needs.
package imagedecode
