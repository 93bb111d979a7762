package hog

// Scharr-style kernels, indexed [dy+1][dx+1].
var (
	kernelX = [3][3]int{
		{-3, 0, 3},
		{-10, 0, 10},
		{-3, 0, 3},
	}
	kernelY = [3][3]int{
		{-3, -10, -3},
		{0, 0, 0},
		{3, 10, 3},
	}
)

// Gradient convolves the 3x3 neighborhood of (x, y) with the kernel pair and returns
// the horizontal and vertical derivatives.
//
// The caller must guarantee a 1-pixel margin around (x, y).
func Gradient(in *Intensity, x, y int) (dx, dy int) {
	for ky := -1; ky <= 1; ky++ {
		row := (y+ky)*in.Width + x
		for kx := -1; kx <= 1; kx++ {
			v := in.Pix[row+kx]
			dx += v * kernelX[ky+1][kx+1]
			dy += v * kernelY[ky+1][kx+1]
		}
	}
	return dx, dy
}

// Magnitude returns the L1 norm of the gradient.
func Magnitude(dx, dy int) int {
	return abs(dx) + abs(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
