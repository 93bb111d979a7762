package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is a rectangle with inclusive top-left and exclusive bottom-right corners.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CropRegion extracts region from img and optionally rescales it.
//
// A nil region keeps the whole image. Scale values of 1 or below zero leave the
// size unchanged; other values resize with a Lanczos filter. Cropped or resized
// results have their origin at (0,0).
func CropRegion(img image.Image, region *Region, scale float64) (image.Image, error) {
	bounds := img.Bounds()
	out := img

	if region != nil {
		x1, y1, x2, y2 := region.X1, region.Y1, region.X2, region.Y2
		if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
			return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if x1 >= x2 || y1 >= y2 {
			return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
		}
		out = imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	}

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(out.Bounds().Dx()) * scale)
		newHeight := int(float64(out.Bounds().Dy()) * scale)
		if newWidth <= 0 || newHeight <= 0 {
			return nil, fmt.Errorf("scale %.3f reduces the image to %dx%d", scale, newWidth, newHeight)
		}
		out = imaging.Resize(out, newWidth, newHeight, imaging.Lanczos)
	}

	return out, nil
}

// Resample resizes img to exactly width x height.
func Resample(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
