package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/imgio"
)

// ImageResult is an image encoded as base64 PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBase64 encodes img as PNG and wraps it in an ImageResult.
func EncodePNGBase64(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveImage writes img to path, picking the encoder from the file extension.
// PNG, JPEG and BMP are supported.
func SaveImage(path string, img image.Image) error {
	var encoder imgio.Encoder
	switch FormatFromPath(path) {
	case "png":
		encoder = imgio.PNGEncoder()
	case "jpeg":
		encoder = imgio.JPEGEncoder(95)
	case "bmp":
		encoder = imgio.BMPEncoder()
	default:
		return fmt.Errorf("unsupported output format for %s", path)
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
