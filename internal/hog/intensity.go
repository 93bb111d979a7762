package hog

import "fmt"

// Intensity is a grayscale image stored as a flat row-major buffer of luma values.
type Intensity struct {
	Width  int
	Height int
	Pix    []int
}

// NewIntensity allocates a zeroed width x height intensity grid.
func NewIntensity(width, height int) (*Intensity, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: intensity grid %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Intensity{
		Width:  width,
		Height: height,
		Pix:    make([]int, width*height),
	}, nil
}

// At returns the luma value at (x, y). It panics if the point is outside the grid.
func (in *Intensity) At(x, y int) int {
	return in.Pix[y*in.Width+x]
}

// Set stores the luma value at (x, y).
func (in *Intensity) Set(x, y, v int) {
	in.Pix[y*in.Width+x] = v
}
