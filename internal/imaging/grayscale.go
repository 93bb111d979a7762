package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

// Luma converts an image into the intensity grid consumed by the descriptor.
//
// Each pixel becomes (299*R + 587*G + 114*B) / 1000 over non-premultiplied 8-bit
// components, truncated. The grid is indexed from (0,0) regardless of the image's
// bounds origin.
func Luma(img image.Image) (*hog.Intensity, error) {
	bounds := img.Bounds()
	in, err := hog.NewIntensity(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to grayscale: %w", err)
	}

	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			in.Set(x, y, LumaOf(c.R, c.G, c.B))
		}
	}
	return in, nil
}

// LumaOf returns the integer luma of one 8-bit RGB triple.
func LumaOf(r, g, b uint8) int {
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}
