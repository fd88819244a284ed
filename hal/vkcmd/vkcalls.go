package vkcmd

import (
	"syscall"
	"unsafe"
)

// procs holds the device-level Vulkan entry points this backend resolves
// through Handles.GetProcAddr, mirroring the teacher's hal/vulkan/vk
// "manual" commands: a raw function pointer per call, invoked with
// syscall.SyscallN rather than a prepared goffi CallInterface, since every
// argument these calls take (handles, scalars, struct pointers) is passed
// as a uintptr.
type procs struct {
	createImage            uintptr
	destroyImage            uintptr
	getImageMemoryRequirements uintptr
	allocateMemory          uintptr
	freeMemory              uintptr
	bindImageMemory         uintptr
	mapMemory               uintptr
	unmapMemory             uintptr
	createSampler           uintptr
	destroySampler          uintptr
	cmdPipelineBarrier      uintptr
	cmdBlitImage            uintptr
	cmdClearColorImage      uintptr
	cmdCopyImage            uintptr
	cmdDraw                 uintptr
	createBuffer               uintptr
	destroyBuffer              uintptr
	getBufferMemoryRequirements uintptr
	bindBufferMemory           uintptr
	cmdCopyBufferToImage       uintptr
}

func loadProcs(getProcAddr ProcAddr) procs {
	addr := func(name string) uintptr {
		return uintptr(getProcAddr(name))
	}
	return procs{
		createImage:                addr("vkCreateImage"),
		destroyImage:               addr("vkDestroyImage"),
		getImageMemoryRequirements: addr("vkGetImageMemoryRequirements"),
		allocateMemory:             addr("vkAllocateMemory"),
		freeMemory:                 addr("vkFreeMemory"),
		bindImageMemory:            addr("vkBindImageMemory"),
		mapMemory:                  addr("vkMapMemory"),
		unmapMemory:                addr("vkUnmapMemory"),
		createSampler:              addr("vkCreateSampler"),
		destroySampler:             addr("vkDestroySampler"),
		cmdPipelineBarrier:         addr("vkCmdPipelineBarrier"),
		cmdBlitImage:               addr("vkCmdBlitImage"),
		cmdClearColorImage:         addr("vkCmdClearColorImage"),
		cmdCopyImage:               addr("vkCmdCopyImage"),
		cmdDraw:                    addr("vkCmdDraw"),
		createBuffer:               addr("vkCreateBuffer"),
		destroyBuffer:              addr("vkDestroyBuffer"),
		getBufferMemoryRequirements: addr("vkGetBufferMemoryRequirements"),
		bindBufferMemory:           addr("vkBindBufferMemory"),
		cmdCopyBufferToImage:       addr("vkCmdCopyBufferToImage"),
	}
}

func (p procs) createImageCall(device uintptr, info *imageCreateInfo, out *uintptr) int32 {
	ret, _, _ := syscall.SyscallN(p.createImage, device, uintptr(unsafe.Pointer(info)), 0, uintptr(unsafe.Pointer(out)))
	return int32(ret)
}

func (p procs) destroyImageCall(device, image uintptr) {
	syscall.SyscallN(p.destroyImage, device, image, 0)
}

func (p procs) getMemoryRequirements(device, image uintptr, size *uint64, typeBits *uint32) {
	// VkMemoryRequirements{size, alignment, memoryTypeBits} — we only read
	// the two fields we need via offsets into a local buffer.
	var req [3]uint64
	syscall.SyscallN(p.getImageMemoryRequirements, device, image, uintptr(unsafe.Pointer(&req[0])))
	*size = req[0]
	*typeBits = uint32(req[2])
}

func (p procs) allocateMemoryCall(device uintptr, info *memoryAllocateInfo, out *uintptr) int32 {
	ret, _, _ := syscall.SyscallN(p.allocateMemory, device, uintptr(unsafe.Pointer(info)), 0, uintptr(unsafe.Pointer(out)))
	return int32(ret)
}

func (p procs) freeMemoryCall(device, mem uintptr) {
	syscall.SyscallN(p.freeMemory, device, mem, 0)
}

func (p procs) bindImageMemoryCall(device, image, mem uintptr, offset uint64) int32 {
	ret, _, _ := syscall.SyscallN(p.bindImageMemory, device, image, mem, uintptr(offset))
	return int32(ret)
}

func (p procs) mapMemoryCall(device, mem uintptr, size uint64, out *unsafe.Pointer) int32 {
	ret, _, _ := syscall.SyscallN(p.mapMemory, device, mem, 0, uintptr(size), 0, uintptr(unsafe.Pointer(out)))
	return int32(ret)
}

func (p procs) unmapMemoryCall(device, mem uintptr) {
	syscall.SyscallN(p.unmapMemory, device, mem)
}

func (p procs) cmdPipelineBarrierCall(cmd uintptr, srcStage, dstStage uint32, barrier *imageMemoryBarrier) {
	syscall.SyscallN(p.cmdPipelineBarrier, cmd,
		uintptr(srcStage), uintptr(dstStage), 0, 0, 0, 0, 0,
		1, uintptr(unsafe.Pointer(barrier)))
}

func (p procs) cmdClearColorImageCall(cmd, image uintptr, layout int32, color *[4]float32, rng *imageSubresourceRange) {
	syscall.SyscallN(p.cmdClearColorImage, cmd, image, uintptr(layout),
		uintptr(unsafe.Pointer(color)), 1, uintptr(unsafe.Pointer(rng)))
}

func (p procs) createSamplerCall(device uintptr, info uintptr, out *uintptr) int32 {
	ret, _, _ := syscall.SyscallN(p.createSampler, device, info, 0, uintptr(unsafe.Pointer(out)))
	return int32(ret)
}

func (p procs) destroySamplerCall(device, sampler uintptr) {
	syscall.SyscallN(p.destroySampler, device, sampler, 0)
}

// syscall4 calls fn(cmd, a, b, c, d) — vkCmdDraw(commandBuffer, vertexCount,
// instanceCount, firstVertex, firstInstance).
func syscall4(fn uintptr, cmd uintptr, a, b, c, d uint32) {
	syscall.SyscallN(fn, cmd, uintptr(a), uintptr(b), uintptr(c), uintptr(d))
}

func (p procs) createBufferCall(device uintptr, info *bufferCreateInfo, out *uintptr) int32 {
	ret, _, _ := syscall.SyscallN(p.createBuffer, device, uintptr(unsafe.Pointer(info)), 0, uintptr(unsafe.Pointer(out)))
	return int32(ret)
}

func (p procs) destroyBufferCall(device, buffer uintptr) {
	syscall.SyscallN(p.destroyBuffer, device, buffer, 0)
}

func (p procs) getBufferMemoryRequirements(device, buffer uintptr, size *uint64, typeBits *uint32) {
	var req [3]uint64
	syscall.SyscallN(p.getBufferMemoryRequirements, device, buffer, uintptr(unsafe.Pointer(&req[0])))
	*size = req[0]
	*typeBits = uint32(req[2])
}

func (p procs) bindBufferMemoryCall(device, buffer, mem uintptr, offset uint64) int32 {
	ret, _, _ := syscall.SyscallN(p.bindBufferMemory, device, buffer, mem, uintptr(offset))
	return int32(ret)
}

func (p procs) cmdCopyBufferToImageCall(cmd, buffer, image uintptr, dstLayout int32, region *bufferImageCopy) {
	syscall.SyscallN(p.cmdCopyBufferToImage, cmd, buffer, image, uintptr(dstLayout), 1, uintptr(unsafe.Pointer(region)))
}
