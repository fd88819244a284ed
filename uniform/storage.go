package uniform

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/shaderchain/types"
)

// BlockKind distinguishes the two CPU-side byte buffers a Storage holds.
type BlockKind uint8

const (
	BlockUBO BlockKind = iota
	BlockPush
)

// Storage is the pair of CPU-side byte buffers (UBO-backed and
// push-constant-backed) that the orchestrator writes reflected uniform
// values into, byte-offset by byte-offset, every frame.
//
// Every declared member is overwritten every frame (§4.6), so Storage
// never needs to clear stale bytes between frames; writes are always
// full overwrites at the member's offset.
type Storage struct {
	ubo  []byte
	push []byte
}

// NewStorage allocates a Storage with a UBO block of uboSize bytes and a
// push-constant block of pushSize bytes. Either may be 0 if the pass
// declared no such block.
func NewStorage(uboSize, pushSize int) *Storage {
	return &Storage{ubo: make([]byte, uboSize), push: make([]byte, pushSize)}
}

func (s *Storage) bufferFor(kind BlockKind) []byte {
	if kind == BlockPush {
		return s.push
	}
	return s.ubo
}

func (s *Storage) blockName(kind BlockKind) string {
	if kind == BlockPush {
		return "push"
	}
	return "ubo"
}

func (s *Storage) checkBounds(kind BlockKind, offset uint32, n int) error {
	buf := s.bufferFor(kind)
	if int(offset)+n > len(buf) {
		return &OffsetError{Block: s.blockName(kind), Offset: offset, WriteSize: n, BlockSize: len(buf)}
	}
	return nil
}

// WriteFloat32 writes a single f32 at offset.
func (s *Storage) WriteFloat32(kind BlockKind, offset uint32, v float32) error {
	if err := s.checkBounds(kind, offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(s.bufferFor(kind)[offset:], math.Float32bits(v))
	return nil
}

// WriteInt32 writes a single i32 at offset.
func (s *Storage) WriteInt32(kind BlockKind, offset uint32, v int32) error {
	if err := s.checkBounds(kind, offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(s.bufferFor(kind)[offset:], uint32(v))
	return nil
}

// WriteVec2 writes two consecutive f32 components at offset.
func (s *Storage) WriteVec2(kind BlockKind, offset uint32, x, y float32) error {
	if err := s.checkBounds(kind, offset, 8); err != nil {
		return err
	}
	buf := s.bufferFor(kind)
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[offset+4:], math.Float32bits(y))
	return nil
}

// WriteVec4 writes four consecutive f32 components at offset.
func (s *Storage) WriteVec4(kind BlockKind, offset uint32, x, y, z, w float32) error {
	if err := s.checkBounds(kind, offset, 16); err != nil {
		return err
	}
	buf := s.bufferFor(kind)
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[offset+4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[offset+8:], math.Float32bits(z))
	binary.LittleEndian.PutUint32(buf[offset+12:], math.Float32bits(w))
	return nil
}

// WriteMat4 writes a 4x4 column-major matrix (64 bytes) at offset.
func (s *Storage) WriteMat4(kind BlockKind, offset uint32, m types.Mat4) error {
	if err := s.checkBounds(kind, offset, 64); err != nil {
		return err
	}
	buf := s.bufferFor(kind)
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[offset+uint32(i*4):], math.Float32bits(v))
	}
	return nil
}

// Bytes returns the current contents of the requested block, for copying
// into a ring slot or uploading as a push-constant payload. The returned
// slice aliases Storage's internal buffer; callers must copy before the
// next write if they need a stable snapshot.
func (s *Storage) Bytes(kind BlockKind) []byte {
	return s.bufferFor(kind)
}
