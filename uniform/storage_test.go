package uniform_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/shaderchain/types"
	"github.com/gogpu/shaderchain/uniform"
)

func TestWriteFloat32RoundTrips(t *testing.T) {
	s := uniform.NewStorage(16, 0)
	if err := s.WriteFloat32(uniform.BlockUBO, 4, 3.5); err != nil {
		t.Fatalf("WriteFloat32: %v", err)
	}
	bits := binary.LittleEndian.Uint32(s.Bytes(uniform.BlockUBO)[4:])
	if got := math.Float32frombits(bits); got != 3.5 {
		t.Fatalf("got %v, want 3.5", got)
	}
}

func TestWriteVec4RoundTrips(t *testing.T) {
	s := uniform.NewStorage(32, 0)
	if err := s.WriteVec4(uniform.BlockUBO, 0, 1, 2, 3, 4); err != nil {
		t.Fatalf("WriteVec4: %v", err)
	}
	buf := s.Bytes(uniform.BlockUBO)
	want := []float32{1, 2, 3, 4}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Fatalf("component %d = %v, want %v", i, got, w)
		}
	}
}

func TestWriteMat4RoundTrips(t *testing.T) {
	s := uniform.NewStorage(64, 0)
	if err := s.WriteMat4(uniform.BlockUBO, 0, types.Identity4); err != nil {
		t.Fatalf("WriteMat4: %v", err)
	}
	buf := s.Bytes(uniform.BlockUBO)
	for i, w := range types.Identity4 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Fatalf("component %d = %v, want %v", i, got, w)
		}
	}
}

func TestWriteOutOfRangeReturnsOffsetError(t *testing.T) {
	s := uniform.NewStorage(8, 0)
	err := s.WriteFloat32(uniform.BlockUBO, 8, 1.0)
	if err == nil {
		t.Fatal("expected an error for an out-of-range write")
	}
	if !uniform.IsOffsetError(err) {
		t.Fatalf("expected an OffsetError, got %T", err)
	}
}

func TestWriteOversizedReturnsOffsetError(t *testing.T) {
	s := uniform.NewStorage(4, 0)
	err := s.WriteVec4(uniform.BlockUBO, 0, 0, 0, 0, 0)
	if !uniform.IsOffsetError(err) {
		t.Fatalf("expected an OffsetError for a 16-byte write into a 4-byte block, got %v", err)
	}
}

func TestPushBlockIsIndependentOfUBOBlock(t *testing.T) {
	s := uniform.NewStorage(4, 4)
	if err := s.WriteFloat32(uniform.BlockUBO, 0, 1); err != nil {
		t.Fatalf("WriteFloat32 ubo: %v", err)
	}
	if err := s.WriteFloat32(uniform.BlockPush, 0, 2); err != nil {
		t.Fatalf("WriteFloat32 push: %v", err)
	}
	ubo := math.Float32frombits(binary.LittleEndian.Uint32(s.Bytes(uniform.BlockUBO)))
	push := math.Float32frombits(binary.LittleEndian.Uint32(s.Bytes(uniform.BlockPush)))
	if ubo != 1 || push != 2 {
		t.Fatalf("ubo=%v push=%v, want 1 and 2", ubo, push)
	}
}
