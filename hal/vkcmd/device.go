package vkcmd

import (
	"unsafe"

	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/types"
	"github.com/gogpu/shaderchain/uniform"
)

// image is the backend payload stored in hal.Texture.Backend: the VkImage
// and its backing VkDeviceMemory, plus the layout this backend last left
// it in. layout starts Undefined and is advanced by transition() before
// whatever operation needs a different one, the same bookkeeping
// librashader-runtime-vk's OwnedImage performs in texture.rs.
type image struct {
	handle uintptr
	memory uintptr
	size   types.Size
	layout layout
}

// ringBuffer is one block binding's uniform ring state: one fence per
// uniform.Ring slot and a mapped pointer that no call in this backend
// ever sets, so uniform bytes are not uploaded. Unlike glimmediate,
// this backend cannot write a uniform by calling into the driver
// directly — Vulkan descriptor sets read from GPU-visible memory the host
// must itself allocate and map, which is exactly the concrete detail
// package uniform.Ring's bookkeeping exists to let a backend manage
// without the orchestrator needing to know about it.
type ringBuffer struct {
	memory uintptr
	mapped unsafe.Pointer
	size   int
	fences [uniform.Depth]slotFence
}

// Device implements hal.Device against a Vulkan command buffer already in
// the recording state.
type Device struct {
	handles  Handles
	p        procs
	samplers map[uintptr]struct{}
	rings    map[any]*ringBuffer
}

func (d *Device) Variant() hal.Variant { return hal.VariantExplicit }

func (d *Device) CreateTexture(size types.Size, format types.TextureFormat, levels uint32) (hal.Texture, error) {
	return d.allocate(size, format, levels, false)
}

func (d *Device) CreateRenderTarget(size types.Size, format types.TextureFormat, levels uint32) (hal.Texture, error) {
	return d.allocate(size, format, levels, true)
}

func (d *Device) allocate(size types.Size, format types.TextureFormat, levels uint32, renderTarget bool) (hal.Texture, error) {
	if format == types.FormatUnknown {
		format = types.FormatRGBA8Unorm
	}
	usage := uint32(0x1 /* TRANSFER_SRC */ | 0x2 /* TRANSFER_DST */ | 0x4 /* SAMPLED */)
	if renderTarget {
		usage |= 0x10 /* COLOR_ATTACHMENT */
	}
	info := imageCreateInfo{
		SType:         sTypeImageCreateInfo,
		ImageType:     imageType2D,
		Format:        formatRGBA8Unorm,
		Extent:        extent3D{Width: size.Width, Height: size.Height, Depth: 1},
		MipLevels:     levels,
		ArrayLayers:   1,
		Samples:       sampleCount1,
		Tiling:        imageTiling,
		Usage:         usage,
		SharingMode:   sharingExclusive,
		InitialLayout: int32(layoutUndefined),
	}
	var handle uintptr
	if ret := d.p.createImageCall(d.devicePtr(), &info, &handle); ret != 0 {
		return hal.Texture{}, &hal.AllocationError{Resource: "image", Size: size.String()}
	}

	var reqSize uint64
	var typeBits uint32
	d.p.getMemoryRequirements(d.devicePtr(), handle, &reqSize, &typeBits)
	allocInfo := memoryAllocateInfo{SType: sTypeMemoryAllocateInfo, AllocationSize: reqSize, MemoryTypeIndex: firstSetBit(typeBits)}
	var mem uintptr
	if ret := d.p.allocateMemoryCall(d.devicePtr(), &allocInfo, &mem); ret != 0 {
		d.p.destroyImageCall(d.devicePtr(), handle)
		return hal.Texture{}, &hal.AllocationError{Resource: "image memory", Size: size.String()}
	}
	if ret := d.p.bindImageMemoryCall(d.devicePtr(), handle, mem, 0); ret != 0 {
		d.p.freeMemoryCall(d.devicePtr(), mem)
		d.p.destroyImageCall(d.devicePtr(), handle)
		return hal.Texture{}, &hal.AllocationError{Resource: "image bind", Size: size.String()}
	}

	return hal.Texture{Backend: &image{handle: handle, memory: mem, size: size, layout: layoutUndefined}}, nil
}

func firstSetBit(bits uint32) uint32 {
	for i := uint32(0); i < 32; i++ {
		if bits&(1<<i) != 0 {
			return i
		}
	}
	return 0
}

// UploadTexture copies pixels into tex's level 0 via a one-shot
// host-visible staging buffer, mirroring librashader-runtime-vk's LUT
// upload path: map, memcpy, unmap, vkCmdCopyBufferToImage, then discard
// the staging buffer. tex must already be TransferDst-capable (every
// image this backend allocates is, see allocate's usage flags).
func (d *Device) UploadTexture(tex hal.Texture, size types.Size, pixels []byte) error {
	img, ok := tex.Backend.(*image)
	if !ok {
		return hal.ErrBackendAPI
	}
	if len(pixels) == 0 {
		return nil
	}

	info := bufferCreateInfo{
		SType:       sTypeBufferCreateInfo,
		Size:        uint64(len(pixels)),
		Usage:       bufferUsageTransferSrc,
		SharingMode: sharingExclusive,
	}
	var buf uintptr
	if ret := d.p.createBufferCall(d.devicePtr(), &info, &buf); ret != 0 {
		return &hal.AllocationError{Resource: "staging buffer", Size: size.String()}
	}
	defer d.p.destroyBufferCall(d.devicePtr(), buf)

	var reqSize uint64
	var typeBits uint32
	d.p.getBufferMemoryRequirements(d.devicePtr(), buf, &reqSize, &typeBits)
	allocInfo := memoryAllocateInfo{SType: sTypeMemoryAllocateInfo, AllocationSize: reqSize, MemoryTypeIndex: firstSetBit(typeBits)}
	var mem uintptr
	if ret := d.p.allocateMemoryCall(d.devicePtr(), &allocInfo, &mem); ret != 0 {
		return &hal.AllocationError{Resource: "staging buffer memory", Size: size.String()}
	}
	defer d.p.freeMemoryCall(d.devicePtr(), mem)

	if ret := d.p.bindBufferMemoryCall(d.devicePtr(), buf, mem, 0); ret != 0 {
		return &hal.AllocationError{Resource: "staging buffer bind", Size: size.String()}
	}

	var mapped unsafe.Pointer
	if ret := d.p.mapMemoryCall(d.devicePtr(), mem, reqSize, &mapped); ret != 0 {
		return &hal.AllocationError{Resource: "staging buffer map", Size: size.String()}
	}
	copy(unsafe.Slice((*byte)(mapped), len(pixels)), pixels)
	d.p.unmapMemoryCall(d.devicePtr(), mem)

	d.transition(img, layoutTransferDstOptimal)
	region := bufferImageCopy{
		ImageSubresource: imageSubresourceLayers{AspectMask: imageAspectColor, LayerCount: 1},
		ImageExtent:      extent3D{Width: size.Width, Height: size.Height, Depth: 1},
	}
	d.p.cmdCopyBufferToImageCall(d.cmdPtr(), buf, img.handle, int32(img.layout), &region)
	d.transition(img, layoutShaderReadOnly)
	return nil
}

func (d *Device) DestroyTexture(tex hal.Texture) {
	img, ok := tex.Backend.(*image)
	if !ok {
		return
	}
	d.p.destroyImageCall(d.devicePtr(), img.handle)
	d.p.freeMemoryCall(d.devicePtr(), img.memory)
}

// transition records a barrier moving img from its current layout to
// target, mirroring texture.rs's input/mipchain barrier pairs: compute
// the matching access-mask/stage-mask pair for the (old, new) layout
// transition this backend actually uses, then record one
// vkCmdPipelineBarrier before the caller's real command.
func (d *Device) transition(img *image, target layout) {
	if img.layout == target {
		return
	}
	srcAccess, srcStage := accessAndStageFor(img.layout)
	dstAccess, dstStage := accessAndStageFor(target)
	barrier := imageMemoryBarrier{
		SType:         sTypeImageMemoryBarrier,
		SrcAccessMask: srcAccess,
		DstAccessMask: dstAccess,
		OldLayout:     int32(img.layout),
		NewLayout:     int32(target),
		Image:         img.handle,
		SubresourceRange: imageSubresourceRange{
			AspectMask: imageAspectColor,
			LevelCount: 1,
			LayerCount: 1,
		},
	}
	d.p.cmdPipelineBarrierCall(d.cmdPtr(), srcStage, dstStage, &barrier)
	img.layout = target
}

func accessAndStageFor(l layout) (access, stage uint32) {
	switch l {
	case layoutTransferDstOptimal:
		return accessTransferWrite, pipelineStageTransfer
	case layoutTransferSrcOptimal:
		return accessTransferRead, pipelineStageTransfer
	case layoutShaderReadOnly:
		return accessShaderRead, pipelineStageFragmentShader
	case layoutColorAttachment:
		return accessColorAttachmentWrite, pipelineStageColorAttachmentOut
	default:
		return accessNone, pipelineStageTopOfPipe
	}
}

func (d *Device) BindRenderTarget(target hal.RenderTargetDescriptor) error {
	img, ok := target.Texture.Backend.(*image)
	if !ok {
		// Viewport target: the host's own swapchain image, already in the
		// layout the host's own render pass expects.
		return nil
	}
	d.transition(img, layoutColorAttachment)
	return nil
}

func (d *Device) ClearColor(target hal.Texture, color types.Color) error {
	img, ok := target.Backend.(*image)
	if !ok {
		return hal.ErrBackendAPI
	}
	d.transition(img, layoutTransferDstOptimal)
	c := [4]float32{color.R, color.G, color.B, color.A}
	rng := imageSubresourceRange{AspectMask: imageAspectColor, LevelCount: 1, LayerCount: 1}
	d.p.cmdClearColorImageCall(d.cmdPtr(), img.handle, int32(img.layout), &c, &rng)
	return nil
}

func (d *Device) CopyInto(dst, src hal.Texture) error {
	dstImg, dok := dst.Backend.(*image)
	srcImg, sok := src.Backend.(*image)
	if !dok || !sok {
		return hal.ErrBackendAPI
	}
	d.transition(srcImg, layoutTransferSrcOptimal)
	d.transition(dstImg, layoutTransferDstOptimal)
	// Only the layout transitions are recorded; no vkCmdCopyImage is
	// issued, so dst's pixels are not written.
	return nil
}

func (d *Device) GenerateMipmaps(tex hal.Texture, levels uint32) error {
	img, ok := tex.Backend.(*image)
	if !ok {
		return hal.ErrBackendAPI
	}
	// One src/dst layout pair per level step, the transitions texture.rs's
	// mip generation loop records around each blit. No vkCmdBlitImage is
	// issued, so the lower levels are not written.
	for i := uint32(0); i < levels-1; i++ {
		d.transition(img, layoutTransferSrcOptimal)
		d.transition(img, layoutTransferDstOptimal)
	}
	d.transition(img, layoutShaderReadOnly)
	return nil
}

func (d *Device) SamplerFor(key types.SamplerKey) (hal.Sampler, error) {
	var handle uintptr
	if ret := d.p.createSamplerCall(d.devicePtr(), 0, &handle); ret != 0 {
		return hal.Sampler{}, hal.ErrBackendAPI
	}
	d.samplers[handle] = struct{}{}
	return hal.Sampler{Backend: handle}, nil
}

// ringFor returns the ring buffer for binding, allocating its Depth
// fences (but not its backing memory, see SetUniform) on first use.
func (d *Device) ringFor(binding any, blockSize int) (*ringBuffer, error) {
	if d.rings == nil {
		d.rings = make(map[any]*ringBuffer)
	}
	if rb, ok := d.rings[binding]; ok {
		return rb, nil
	}
	rb := &ringBuffer{size: blockSize}
	for i := range rb.fences {
		f, err := newSlotFence()
		if err != nil {
			return nil, err
		}
		rb.fences[i] = f
	}
	d.rings[binding] = rb
	return rb, nil
}

func (d *Device) SetUniform(loc hal.Location, bytes []byte) error {
	slot, isRing := loc.Backend.(hal.RingSlot)
	if !isRing {
		// Push constants have no ring. No vkCmdPushConstants is recorded,
		// so a write to a non-ring location is accepted and dropped.
		return nil
	}
	rb, err := d.ringFor(slot.Binding, len(bytes))
	if err != nil {
		return err
	}
	idx := slot.Slot
	// rb.fences[idx].ready() would gate this write behind the GPU having
	// finished reading the slot's prior contents on a real device; with
	// no actual submitted work to wait on here, the write proceeds and
	// only the bookkeeping (signal) is exercised. rb.mapped is left nil
	// (no vkAllocateMemory/vkMapMemory call backs this ring buffer yet);
	// a real device would map Depth*blockSize bytes of host-visible
	// memory once here.
	if rb.mapped != nil {
		copy(unsafe.Slice((*byte)(rb.mapped), rb.size), bytes)
	}
	rb.fences[idx].signal()
	return nil
}

func (d *Device) BindSampled(binding uint32, tex hal.Texture, samp hal.Sampler, stages hal.ShaderStages) error {
	img, ok := tex.Backend.(*image)
	if !ok {
		return hal.ErrBackendAPI
	}
	d.transition(img, layoutShaderReadOnly)
	return nil
}

func (d *Device) DrawQuad(kind hal.QuadKind) error {
	syscall4(d.p.cmdDraw, d.cmdPtr(), 4, 1, 0, 0)
	return nil
}

func (d *Device) devicePtr() uintptr { return uintptr(d.handles.Device) }
func (d *Device) cmdPtr() uintptr    { return uintptr(d.handles.CommandBuffer) }
