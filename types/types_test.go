package types

import "testing"

func TestWrapModeString(t *testing.T) {
	tests := []struct {
		wrap WrapMode
		want string
	}{
		{WrapClamp, "Clamp"},
		{WrapRepeat, "Repeat"},
		{WrapMirroredRepeat, "MirroredRepeat"},
		{WrapClampToBorder, "ClampToBorder"},
		{WrapMirroredClamp, "MirroredClamp"},
		{WrapMode(99), "WrapMode(99)"},
	}
	for _, tt := range tests {
		if got := tt.wrap.String(); got != tt.want {
			t.Errorf("WrapMode(%d).String() = %q, want %q", tt.wrap, got, tt.want)
		}
	}
}

func TestSizeScaleRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   Size
		f    float64
		want Size
	}{
		{Size{256, 224}, 1.0, Size{256, 224}},
		{Size{320, 240}, 2.0, Size{640, 480}},
		{Size{1, 1}, 0.5, Size{1, 1}},
		{Size{3, 3}, 1.5, Size{5, 5}},
		{Size{0, 0}, 1.0, Size{1, 1}},
	}
	for _, tt := range tests {
		if got := tt.in.Scale(tt.f); got != tt.want {
			t.Errorf("Size(%v).Scale(%v) = %v, want %v", tt.in, tt.f, got, tt.want)
		}
	}
}

func TestSizeMipLevels(t *testing.T) {
	tests := []struct {
		in   Size
		want uint32
	}{
		{Size{1, 1}, 1},
		{Size{2, 1}, 2},
		{Size{256, 224}, 9},
		{Size{1920, 1080}, 11},
	}
	for _, tt := range tests {
		if got := tt.in.MipLevels(); got != tt.want {
			t.Errorf("Size(%v).MipLevels() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTextureFormatString(t *testing.T) {
	if FormatUnknown.String() != "Unknown" {
		t.Errorf("FormatUnknown.String() = %q", FormatUnknown.String())
	}
	if TextureFormat(999).String() != "TextureFormat(999)" {
		t.Errorf("unexpected fallback string: %q", TextureFormat(999).String())
	}
}
