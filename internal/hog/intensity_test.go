package hog

import (
	"errors"
	"testing"
)

func TestNewIntensity(t *testing.T) {
	in, err := NewIntensity(4, 3)
	if err != nil {
		t.Fatalf("NewIntensity failed: %v", err)
	}
	if len(in.Pix) != 12 {
		t.Fatalf("buffer length: got %d, want 12", len(in.Pix))
	}

	in.Set(3, 1, 200)
	if got := in.At(3, 1); got != 200 {
		t.Errorf("At(3,1): got %d, want 200", got)
	}
	// Row-major: (3,1) is index 1*4+3.
	if in.Pix[7] != 200 {
		t.Errorf("Pix[7]: got %d, want 200", in.Pix[7])
	}
}

func TestNewIntensity_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntensity(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("got error %v, want %v", err, ErrInvalidDimensions)
			}
		})
	}
}
