package imagedecode_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/shaderchain/internal/imagedecode"
)

func writeTestPNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
}

func TestDecodeReturnsSizeAndPixels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lut.png")
	writeTestPNG(t, path, 4, 2, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	d := imagedecode.New()
	got, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Size.Width != 4 || got.Size.Height != 2 {
		t.Fatalf("Size = %v, want 4x2", got.Size)
	}
	if len(got.Pixels) != 4*2*4 {
		t.Fatalf("len(Pixels) = %d, want %d", len(got.Pixels), 4*2*4)
	}
	if got.Pixels[0] != 255 || got.Pixels[1] != 0 || got.Pixels[2] != 0 || got.Pixels[3] != 255 {
		t.Fatalf("first pixel = %v, want opaque red", got.Pixels[:4])
	}
}

func TestDecodeMissingFileReturnsError(t *testing.T) {
	d := imagedecode.New()
	if _, err := d.Decode("/nonexistent/path/lut.png"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
