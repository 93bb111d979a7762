package imaging

import (
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodePNGBase64(t *testing.T) {
	img := createEdgeImage(30, 20, 10)

	result, err := EncodePNGBase64(img)
	if err != nil {
		t.Fatalf("EncodePNGBase64 failed: %v", err)
	}

	if result.Width != 30 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	out, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if gray8(out, 9, 0) != 0 || gray8(out, 10, 0) != 255 {
		t.Error("decoded PNG lost the edge")
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	img := createEdgeImage(24, 16, 12)

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg", "out.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := SaveImage(path, img); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			loaded, err := NewImageCache().Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if loaded.Bounds().Dx() != 24 || loaded.Bounds().Dy() != 16 {
				t.Errorf("dimensions: got %dx%d, want 24x16", loaded.Bounds().Dx(), loaded.Bounds().Dy())
			}
		})
	}
}

func TestSaveImage_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")

	if err := SaveImage(path, createEdgeImage(4, 4, 2)); err == nil {
		t.Error("SaveImage should fail for unsupported extension")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written for an unsupported format")
	}
}
