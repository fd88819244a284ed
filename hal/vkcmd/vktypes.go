package vkcmd

// Minimal Vulkan struct mirrors, field order matching the C ABI exactly
// for the subset this backend populates. Reserved/extension fields are
// always zero (no pNext chain is ever built), the same "just enough of
// the struct" approach the teacher's hal/vulkan/vk package takes for its
// hand-written bindings.

const (
	sTypeImageCreateInfo        = 14
	sTypeMemoryAllocateInfo     = 5
	sTypeSamplerCreateInfo      = 31
	sTypeImageMemoryBarrier     = 45
	sTypeImageViewCreateInfo    = 15
	sTypeBufferCreateInfo       = 12
)

type extent3D struct {
	Width, Height, Depth uint32
}

type offset3D struct {
	X, Y, Z int32
}

type imageSubresourceLayers struct {
	AspectMask     uint32
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type imageCreateInfo struct {
	SType       int32
	PNext       uintptr
	Flags       uint32
	ImageType   int32 // VK_IMAGE_TYPE_2D == 1
	Format      int32
	Extent      extent3D
	MipLevels   uint32
	ArrayLayers uint32
	Samples     int32 // VK_SAMPLE_COUNT_1_BIT == 1
	Tiling      int32 // VK_IMAGE_TILING_OPTIMAL == 0
	Usage       uint32
	SharingMode int32 // VK_SHARING_MODE_EXCLUSIVE == 0
	QueueCount  uint32
	QueueIndices uintptr
	InitialLayout int32 // VK_IMAGE_LAYOUT_UNDEFINED == 0
}

type memoryAllocateInfo struct {
	SType           int32
	PNext           uintptr
	AllocationSize  uint64
	MemoryTypeIndex uint32
}

type imageSubresourceRange struct {
	AspectMask     uint32
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type imageMemoryBarrier struct {
	SType               int32
	PNext               uintptr
	SrcAccessMask       uint32
	DstAccessMask       uint32
	OldLayout           int32
	NewLayout           int32
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               uintptr
	SubresourceRange    imageSubresourceRange
}

// bufferCreateInfo backs the one-shot host-visible staging buffer
// UploadTexture copies LUT pixels through before vkCmdCopyBufferToImage.
type bufferCreateInfo struct {
	SType                 int32
	PNext                 uintptr
	Flags                 uint32
	Size                  uint64
	Usage                 uint32
	SharingMode           int32
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    uintptr
}

type bufferImageCopy struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  imageSubresourceLayers
	ImageOffset       offset3D
	ImageExtent       extent3D
}

// layout is the subset of VkImageLayout this backend tracks per texture.
type layout int32

const (
	layoutUndefined          layout = 0
	layoutTransferDstOptimal layout = 7
	layoutTransferSrcOptimal layout = 6
	layoutShaderReadOnly     layout = 5
	layoutColorAttachment    layout = 2
)

const (
	accessNone                = 0
	accessColorAttachmentWrite = 0x100
	accessTransferRead         = 0x800
	accessTransferWrite        = 0x1000
	accessShaderRead           = 0x20
)

const (
	pipelineStageTopOfPipe         = 0x1
	pipelineStageTransfer          = 0x1000
	pipelineStageFragmentShader    = 0x80
	pipelineStageColorAttachmentOut = 0x400
)

const (
	imageAspectColor       = 0x1
	sampleCount1           = 1
	imageTiling            = 0
	imageType2D            = 1
	sharingExclusive       = 0
	formatRGBA8Unorm       = 37
	bufferUsageTransferSrc = 0x1
)
