//go:build !linux

package vkcmd

// slotFence falls back to an always-ready marker on platforms without
// eventfd; a real port would wait on a VkFence via the platform's native
// handle type instead (as the teacher's dx12 backend does with
// golang.org/x/sys/windows event handles).
type slotFence struct {
	signaled bool
}

func newSlotFence() (slotFence, error) { return slotFence{}, nil }

func (f *slotFence) signal() { f.signaled = true }

func (f slotFence) ready() bool { return f.signaled }

func (f slotFence) close() {}
