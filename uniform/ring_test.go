package uniform_test

import (
	"testing"

	"github.com/gogpu/shaderchain/uniform"
)

func TestSlotForWrapsAtDepth(t *testing.T) {
	if got := uniform.SlotFor(0); got != 0 {
		t.Fatalf("SlotFor(0) = %d, want 0", got)
	}
	if got := uniform.SlotFor(uniform.Depth); got != 0 {
		t.Fatalf("SlotFor(Depth) = %d, want 0", got)
	}
	if got := uniform.SlotFor(uniform.Depth + 3); got != 3 {
		t.Fatalf("SlotFor(Depth+3) = %d, want 3", got)
	}
}

func TestRingTracksLastWriter(t *testing.T) {
	r := uniform.NewRing()
	if _, ok := r.LastWrite(0); ok {
		t.Fatal("fresh ring should report slot 0 as unwritten")
	}
	slot := r.Use(5)
	if slot != 5 {
		t.Fatalf("Use(5) returned slot %d, want 5", slot)
	}
	count, ok := r.LastWrite(5)
	if !ok || count != 5 {
		t.Fatalf("LastWrite(5) = (%d, %v), want (5, true)", count, ok)
	}
}

func TestConsecutiveFramesNeverShareASlot(t *testing.T) {
	r := uniform.NewRing()
	seen := make(map[int]uint64)
	for count := uint64(0); count < uniform.Depth*3; count++ {
		slot := r.Use(count)
		if prev, ok := seen[slot]; ok && count-prev < uniform.Depth {
			t.Fatalf("slot %d reused by frame %d too soon after frame %d", slot, count, prev)
		}
		seen[slot] = count
	}
}
