package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestLumaOf(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    int
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"red", 255, 0, 0, 76},
		{"green", 0, 255, 0, 149},
		{"blue", 0, 0, 255, 29},
		{"gray", 128, 128, 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LumaOf(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("LumaOf(%d,%d,%d): got %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestLuma(t *testing.T) {
	img := createEdgeImage(20, 10, 12)

	in, err := Luma(img)
	if err != nil {
		t.Fatalf("Luma failed: %v", err)
	}

	if in.Width != 20 || in.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", in.Width, in.Height)
	}
	if got := in.At(11, 5); got != 0 {
		t.Errorf("left of edge: got %d, want 0", got)
	}
	if got := in.At(12, 5); got != 255 {
		t.Errorf("right of edge: got %d, want 255", got)
	}
}

func TestLuma_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 23))
	img.Set(10, 20, color.RGBA{255, 0, 0, 255})
	img.Set(13, 22, color.RGBA{0, 0, 255, 255})

	in, err := Luma(img)
	if err != nil {
		t.Fatalf("Luma failed: %v", err)
	}

	if in.Width != 4 || in.Height != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", in.Width, in.Height)
	}
	if got := in.At(0, 0); got != 76 {
		t.Errorf("top-left: got %d, want 76", got)
	}
	if got := in.At(3, 2); got != 29 {
		t.Errorf("bottom-right: got %d, want 29", got)
	}
}

func TestLuma_GrayImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.SetGray(0, 0, color.Gray{Y: 17})
	img.SetGray(1, 0, color.Gray{Y: 200})

	in, err := Luma(img)
	if err != nil {
		t.Fatalf("Luma failed: %v", err)
	}
	if in.At(0, 0) != 17 || in.At(1, 0) != 200 || in.At(2, 0) != 0 {
		t.Errorf("got %v, want [17 200 0]", in.Pix)
	}
}

func TestLuma_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Luma(img); err == nil {
		t.Error("Luma should fail for an empty image")
	}
}
