// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package thread confines a Device's calls to a single locked OS thread.
// An immediate-mode backend is tied to a thread-current context, and the
// explicit backend consumes a single command queue; both require every
// call against one Device to originate from the same OS thread. A host
// embedding the engine alongside other work (e.g. a UI event loop on the
// process's main thread) can run a Chain's construction and every Frame
// call through a Thread to get that guarantee without pinning its own
// goroutines.
package thread

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Thread represents a dedicated OS thread for specific operations.
// All function calls are serialized and executed on the same thread.
type Thread struct {
	funcs   chan func()
	results chan any
	done    chan struct{}
	running atomic.Bool
}

// New creates a new thread and starts it.
// The thread is locked to an OS thread (runtime.LockOSThread).
func New() *Thread {
	t := &Thread{
		funcs:   make(chan func(), 16), // Buffered for async calls
		results: make(chan any, 1),     // Capacity 1; Call uses its own per-call channel
		done:    make(chan struct{}),
	}
	t.running.Store(true)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		// Lock this goroutine to an OS thread.
		// Critical for Vulkan/OpenGL context operations.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		wg.Done() // Signal that thread is ready

		for {
			select {
			case f := <-t.funcs:
				f()
			case <-t.done:
				return
			}
		}
	}()

	wg.Wait() // Wait for thread to be ready
	return t
}

// Call executes f on the thread and waits for completion.
// Returns the result from f.
func (t *Thread) Call(f func() any) any {
	if !t.running.Load() {
		return nil
	}

	done := make(chan any, 1)
	t.funcs <- func() {
		done <- f()
	}
	return <-done
}

// CallVoid executes f on the thread and waits for completion.
// Use when no return value is needed.
func (t *Thread) CallVoid(f func()) {
	if !t.running.Load() {
		return
	}

	done := make(chan struct{})
	t.funcs <- func() {
		f()
		close(done)
	}
	<-done
}

// CallAsync executes f on the thread without waiting.
// Use for fire-and-forget operations.
func (t *Thread) CallAsync(f func()) {
	if !t.running.Load() {
		return
	}

	select {
	case t.funcs <- f:
	default:
		// Channel full - execute synchronously to avoid deadlock
		t.CallVoid(f)
	}
}

// Stop stops the thread.
func (t *Thread) Stop() {
	if t.running.Swap(false) {
		close(t.done)
	}
}

// IsRunning returns true if the thread is running.
func (t *Thread) IsRunning() bool {
	return t.running.Load()
}
