//go:build linux

package vkcmd

import "golang.org/x/sys/unix"

// slotFence is the CPU-side wait primitive that gates reuse of a uniform
// ring slot (package uniform's Ring bookkeeping only tracks *which* slot
// was used last; the explicit backend still needs to know the GPU has
// actually finished reading it before the host overwrites it again 16
// frames later). An eventfd stands in for a full VkFence wait loop.
type slotFence struct {
	fd int
}

func newSlotFence() (slotFence, error) {
	fd, err := unix.Eventfd(0, unix.EFD_NONBLOCK)
	if err != nil {
		return slotFence{}, err
	}
	return slotFence{fd: fd}, nil
}

// signal marks the slot's prior GPU work as complete.
func (f slotFence) signal() {
	_ = unix.Write(f.fd, []byte{1, 0, 0, 0, 0, 0, 0, 0})
}

// ready reports whether the slot's prior GPU work has completed.
func (f slotFence) ready() bool {
	var buf [8]byte
	n, err := unix.Read(f.fd, buf[:])
	return err == nil && n == 8
}

func (f slotFence) close() {
	_ = unix.Close(f.fd)
}
