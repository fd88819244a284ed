package imagedecode

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/gogpu/shaderchain/lut"
	"github.com/gogpu/shaderchain/types"
)

// Decoder decodes LUT image files into raw RGBA8 pixels. It implements
// lut.Decoder.
type Decoder struct{}

// New returns the default Decoder.
func New() Decoder { return Decoder{} }

// Decode reads and decodes the image at path.
func (Decoder) Decode(path string) (lut.Decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return lut.Decoded{}, fmt.Errorf("imagedecode: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return lut.Decoded{}, fmt.Errorf("imagedecode: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	size := types.Size{Width: uint32(bounds.Dx()), Height: uint32(bounds.Dy())}
	pixels := make([]byte, 0, size.Width*size.Height*4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, c.R, c.G, c.B, c.A)
		}
	}

	return lut.Decoded{Pixels: pixels, Size: size}, nil
}
