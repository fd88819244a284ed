package glimmediate

import "unsafe"

// ProcAddressFunc resolves a GL entry point by name, the same contract the
// teacher's hal/gles package used for its EGL/WGL loaders.
type ProcAddressFunc func(name string) unsafe.Pointer

var procLoader ProcAddressFunc

// SetProcAddressLoader installs the function pointer loader Open uses to
// resolve every GL entry point this backend needs. Must be called before
// the first hal.OpenDevice(hal.VariantImmediate); the host is responsible
// for having a GL context current on the calling thread first.
func SetProcAddressLoader(f ProcAddressFunc) {
	procLoader = f
}
