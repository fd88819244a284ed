// Package vkcmd implements hal.Device against a Vulkan command buffer
// (the "explicit" backend shape): every managed image tracks its own
// VkImageLayout, and every operation that needs a different layout than
// the image currently holds records a VkImageMemoryBarrier before issuing
// the real command, the same sequencing librashader-runtime-vk's
// texture.rs uses around blits, clears and sampled reads.
//
// This package does not create a VkInstance, VkDevice, surface, or
// swapchain (no own window system, per this engine's scope): the host
// opens Vulkan itself and supplies the device/queue/command-buffer handles
// via SetHandles before calling hal.OpenDevice(hal.VariantExplicit). The
// command buffer must already be in the recording state; this backend
// records into it but never begins, ends, or submits it, matching the "no
// multi-queue scheduling" non-goal — frame pacing and submission are the
// host's responsibility.
package vkcmd
