package glimmediate

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// GL constants this backend needs. Kept to the subset CreateTexture,
// CreateRenderTarget, BindRenderTarget, ClearColor, CopyInto,
// GenerateMipmaps, SamplerFor, SetUniform, BindSampled and DrawQuad touch.
const (
	glTexture2D             = 0x0DE1
	glRGBA8                 = 0x8058
	glRGBA                  = 0x1908
	glUnsignedByte          = 0x1401
	glFramebuffer           = 0x8D40
	glColorAttachment0      = 0x8CE0
	glFramebufferComplete   = 0x8CD5
	glReadFramebuffer       = 0x8CA8
	glDrawFramebuffer       = 0x8CA9
	glColorBufferBit        = 0x00004000
	glLinear                = 0x2601
	glNearest               = 0x2600
	glClampToEdge           = 0x812F
	glRepeat                = 0x2901
	glMirroredRepeat        = 0x8370
	glTextureMinFilter      = 0x2801
	glTextureMagFilter      = 0x2800
	glTextureWrapS          = 0x2802
	glTextureWrapT          = 0x2803
	glTriangleStrip         = 0x0005
)

// call interface signatures reused across the handful of entry points
// this backend loads. The teacher's full GL wrapper needs ~30 distinct
// signatures for its much larger surface; this backend's narrow Device
// interface needs far fewer.
var (
	cifVoid        types.CallInterface // void fn(void)
	cifVoid1       types.CallInterface // void fn(u32)
	cifVoid2       types.CallInterface // void fn(u32, u32)
	cifVoid3       types.CallInterface // void fn(u32, u32, u32)
	cifVoid4       types.CallInterface // void fn(u32, u32, u32, u32)
	cifVoid4Float  types.CallInterface // void fn(f32, f32, f32, f32)
	cifVoid1Ptr    types.CallInterface // void fn(i32, void*)
	cifVoid2Ptr    types.CallInterface // void fn(u32, void*)
	cifVoid2IPtr   types.CallInterface // void fn(i32, i32, void*)
	cifVoid9TexImg types.CallInterface // void fn(u32,i32,i32,i32,i32,i32,u32,u32,void*); shared by glTexImage2D and glTexSubImage2D (identical shape)
	cifVoid10Blit  types.CallInterface // void fn(i32,i32,i32,i32,i32,i32,i32,i32,u32,u32)
	cifUInt321     types.CallInterface // u32 fn(u32)
	cifGenPtr      types.CallInterface // void fn(i32, void*)
	cifInitialized bool
)

func initCallInterfaces() error {
	if cifInitialized {
		return nil
	}
	u32 := types.UInt32TypeDescriptor
	i32 := types.SInt32TypeDescriptor
	f32 := types.FloatTypeDescriptor
	voidT := types.VoidTypeDescriptor
	ptr := types.PointerTypeDescriptor

	specs := []struct {
		cif *types.CallInterface
		ret *types.TypeDescriptor
		arg []*types.TypeDescriptor
	}{
		{&cifVoid, voidT, nil},
		{&cifVoid1, voidT, []*types.TypeDescriptor{u32}},
		{&cifVoid2, voidT, []*types.TypeDescriptor{u32, u32}},
		{&cifVoid3, voidT, []*types.TypeDescriptor{u32, u32, u32}},
		{&cifVoid4, voidT, []*types.TypeDescriptor{u32, u32, u32, u32}},
		{&cifVoid4Float, voidT, []*types.TypeDescriptor{f32, f32, f32, f32}},
		{&cifVoid1Ptr, voidT, []*types.TypeDescriptor{i32, ptr}},
		{&cifVoid2IPtr, voidT, []*types.TypeDescriptor{i32, i32, ptr}},
		{&cifVoid2Ptr, voidT, []*types.TypeDescriptor{u32, ptr}},
		{&cifVoid9TexImg, voidT, []*types.TypeDescriptor{u32, i32, i32, i32, i32, i32, u32, u32, ptr}},
		{&cifVoid10Blit, voidT, []*types.TypeDescriptor{i32, i32, i32, i32, i32, i32, i32, i32, u32, u32}},
		{&cifUInt321, u32, []*types.TypeDescriptor{u32}},
		{&cifGenPtr, voidT, []*types.TypeDescriptor{i32, ptr}},
	}
	for _, s := range specs {
		if err := ffi.PrepareCallInterface(s.cif, types.DefaultCall, s.ret, s.arg); err != nil {
			return err
		}
	}
	cifInitialized = true
	return nil
}

// context holds the function pointers this backend resolves through
// ProcAddressFunc. Only the entry points the Device interface actually
// needs are loaded, unlike the teacher's full GL wrapper.
type context struct {
	genTextures            unsafe.Pointer
	deleteTextures          unsafe.Pointer
	bindTexture             unsafe.Pointer
	texImage2D              unsafe.Pointer
	texSubImage2D           unsafe.Pointer
	genFramebuffers         unsafe.Pointer
	deleteFramebuffers      unsafe.Pointer
	bindFramebuffer         unsafe.Pointer
	framebufferTexture2D    unsafe.Pointer
	checkFramebufferStatus  unsafe.Pointer
	clearColor              unsafe.Pointer
	clear                   unsafe.Pointer
	blitFramebuffer         unsafe.Pointer
	generateMipmap          unsafe.Pointer
	genSamplers             unsafe.Pointer
	deleteSamplers          unsafe.Pointer
	samplerParameteri       unsafe.Pointer
	bindSampler             unsafe.Pointer
	activeTexture           unsafe.Pointer
	drawArrays              unsafe.Pointer
	uniform1fv              unsafe.Pointer
}

func newContext(getProcAddr ProcAddressFunc) (*context, error) {
	if err := initCallInterfaces(); err != nil {
		return nil, err
	}
	c := &context{
		genTextures:            getProcAddr("glGenTextures"),
		deleteTextures:         getProcAddr("glDeleteTextures"),
		bindTexture:            getProcAddr("glBindTexture"),
		texImage2D:             getProcAddr("glTexImage2D"),
		texSubImage2D:          getProcAddr("glTexSubImage2D"),
		genFramebuffers:        getProcAddr("glGenFramebuffers"),
		deleteFramebuffers:     getProcAddr("glDeleteFramebuffers"),
		bindFramebuffer:        getProcAddr("glBindFramebuffer"),
		framebufferTexture2D:   getProcAddr("glFramebufferTexture2D"),
		checkFramebufferStatus: getProcAddr("glCheckFramebufferStatus"),
		clearColor:             getProcAddr("glClearColor"),
		clear:                  getProcAddr("glClear"),
		blitFramebuffer:        getProcAddr("glBlitFramebuffer"),
		generateMipmap:         getProcAddr("glGenerateMipmap"),
		genSamplers:            getProcAddr("glGenSamplers"),
		deleteSamplers:         getProcAddr("glDeleteSamplers"),
		samplerParameteri:      getProcAddr("glSamplerParameteri"),
		bindSampler:            getProcAddr("glBindSampler"),
		activeTexture:          getProcAddr("glActiveTexture"),
		drawArrays:             getProcAddr("glDrawArrays"),
		uniform1fv:             getProcAddr("glUniform1fv"),
	}
	return c, nil
}

// setUniformFloats uploads count 32-bit floats starting at data to the
// named uniform location. The reflected member's declared size is always
// a multiple of 4 bytes (float/vec2/vec4/mat4), so treating every write
// as a flat float array is sufficient for upload; the GLSL-side type
// determines how the driver reinterprets the bytes.
func (c *context) setUniformFloats(location int32, count int32, data unsafe.Pointer) {
	args := []unsafe.Pointer{unsafe.Pointer(&location), unsafe.Pointer(&count), unsafe.Pointer(&data)}
	_ = ffi.CallFunction(&cifVoid2IPtr, c.uniform1fv, nil, args)
}

func (c *context) genOne(fn unsafe.Pointer) uint32 {
	var id uint32
	args := []unsafe.Pointer{unsafe.Pointer(&[]int32{1}[0]), unsafe.Pointer(&id)}
	_ = ffi.CallFunction(&cifGenPtr, fn, nil, args)
	return id
}

func (c *context) deleteOne(fn unsafe.Pointer, id uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&[]int32{1}[0]), unsafe.Pointer(&id)}
	_ = ffi.CallFunction(&cifGenPtr, fn, nil, args)
}

func (c *context) bindTexture2D(id uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&[]uint32{glTexture2D}[0]), unsafe.Pointer(&id)}
	_ = ffi.CallFunction(&cifVoid2, c.bindTexture, nil, args)
}

func (c *context) texImage2DRGBA8(width, height int32, pixels unsafe.Pointer) {
	args := []unsafe.Pointer{
		unsafe.Pointer(&[]uint32{glTexture2D}[0]),
		unsafe.Pointer(&[]int32{0}[0]),
		unsafe.Pointer(&[]int32{glRGBA8}[0]),
		unsafe.Pointer(&width),
		unsafe.Pointer(&height),
		unsafe.Pointer(&[]int32{0}[0]),
		unsafe.Pointer(&[]uint32{glRGBA}[0]),
		unsafe.Pointer(&[]uint32{glUnsignedByte}[0]),
		unsafe.Pointer(&pixels),
	}
	_ = ffi.CallFunction(&cifVoid9TexImg, c.texImage2D, nil, args)
}

// texSubImage2DRGBA8 uploads pixels into level 0 of the texture currently
// bound to glTexture2D, covering the full width x height extent starting
// at (0, 0).
func (c *context) texSubImage2DRGBA8(width, height int32, pixels unsafe.Pointer) {
	args := []unsafe.Pointer{
		unsafe.Pointer(&[]uint32{glTexture2D}[0]),
		unsafe.Pointer(&[]int32{0}[0]),
		unsafe.Pointer(&[]int32{0}[0]),
		unsafe.Pointer(&[]int32{0}[0]),
		unsafe.Pointer(&width),
		unsafe.Pointer(&height),
		unsafe.Pointer(&[]uint32{glRGBA}[0]),
		unsafe.Pointer(&[]uint32{glUnsignedByte}[0]),
		unsafe.Pointer(&pixels),
	}
	_ = ffi.CallFunction(&cifVoid9TexImg, c.texSubImage2D, nil, args)
}

func (c *context) bindFramebufferTarget(target, id uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&target), unsafe.Pointer(&id)}
	_ = ffi.CallFunction(&cifVoid2, c.bindFramebuffer, nil, args)
}

func (c *context) framebufferTexture(target uint32, tex uint32) {
	args := []unsafe.Pointer{
		unsafe.Pointer(&target),
		unsafe.Pointer(&[]uint32{glColorAttachment0}[0]),
		unsafe.Pointer(&[]uint32{glTexture2D}[0]),
		unsafe.Pointer(&tex),
	}
	_ = ffi.CallFunction(&cifVoid4, c.framebufferTexture2D, nil, args)
}

func (c *context) checkFramebuffer(target uint32) uint32 {
	var status uint32
	args := []unsafe.Pointer{unsafe.Pointer(&target)}
	_ = ffi.CallFunction(&cifUInt321, c.checkFramebufferStatus, unsafe.Pointer(&status), args)
	return status
}

func (c *context) setClearColor(r, g, b, a float32) {
	args := []unsafe.Pointer{unsafe.Pointer(&r), unsafe.Pointer(&g), unsafe.Pointer(&b), unsafe.Pointer(&a)}
	_ = ffi.CallFunction(&cifVoid4Float, c.clearColor, nil, args)
}

func (c *context) clearColorBuffer() {
	mask := uint32(glColorBufferBit)
	args := []unsafe.Pointer{unsafe.Pointer(&mask)}
	_ = ffi.CallFunction(&cifVoid1, c.clear, nil, args)
}

func (c *context) blit(w, h int32) {
	args := []unsafe.Pointer{
		unsafe.Pointer(&[]int32{0}[0]), unsafe.Pointer(&[]int32{0}[0]),
		unsafe.Pointer(&w), unsafe.Pointer(&h),
		unsafe.Pointer(&[]int32{0}[0]), unsafe.Pointer(&[]int32{0}[0]),
		unsafe.Pointer(&w), unsafe.Pointer(&h),
		unsafe.Pointer(&[]uint32{glColorBufferBit}[0]), unsafe.Pointer(&[]uint32{glNearest}[0]),
	}
	_ = ffi.CallFunction(&cifVoid10Blit, c.blitFramebuffer, nil, args)
}

func (c *context) generateMipmapTex() {
	target := uint32(glTexture2D)
	args := []unsafe.Pointer{unsafe.Pointer(&target)}
	_ = ffi.CallFunction(&cifVoid1, c.generateMipmap, nil, args)
}

func (c *context) samplerParam(samp, pname uint32, value int32) {
	args := []unsafe.Pointer{unsafe.Pointer(&samp), unsafe.Pointer(&pname), unsafe.Pointer(&value)}
	_ = ffi.CallFunction(&cifVoid3, c.samplerParameteri, nil, args)
}

func (c *context) bindSamplerUnit(unit, samp uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&unit), unsafe.Pointer(&samp)}
	_ = ffi.CallFunction(&cifVoid2, c.bindSampler, nil, args)
}

func (c *context) setActiveTexture(unit uint32) {
	args := []unsafe.Pointer{unsafe.Pointer(&unit)}
	_ = ffi.CallFunction(&cifVoid1, c.activeTexture, nil, args)
}

func (c *context) drawArraysTriangleStrip() {
	mode := uint32(glTriangleStrip)
	first := int32(0)
	count := int32(4)
	args := []unsafe.Pointer{unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count)}
	_ = ffi.CallFunction(&cifVoid3, c.drawArrays, nil, args)
}
