// Package hog computes Histogram-of-Oriented-Gradients descriptors from grayscale
// intensity grids.
//
// The image is divided into fixed-size cells. For every interior pixel a Scharr-style
// 3x3 kernel pair estimates the gradient, the gradient direction is folded into an
// undirected orientation in [0, π) and quantized to the nearest angle bin, and the
// cell's bin keeps the strongest L1 magnitude seen. The finished grid is rescaled so
// that its global maximum becomes 255.
//
// # Cell Geometry
//
// A 1-pixel border is reserved so that every processed pixel has a full 3x3
// neighborhood. Cells start at pixel (1,1):
//   - rows = (height - 2) / cellHeight
//   - columns = (width - 2) / cellWidth
//
// Remainder pixels at the bottom and right edges never contribute.
//
// # Max Pooling
//
// Unlike most HOG variants, a bin stores the peak edge strength for its orientation
// within the cell, not a vote count or a magnitude sum.
//
// # Errors
//
// All failures are reported with sentinel errors wrapped with context:
//   - ErrInvalidConfiguration: non-positive bin count or cell size
//   - ErrInvalidDimensions: image too small to hold a single cell
//   - ErrDegenerateInput: the image has no gradient anywhere
//   - ErrIndexOutOfRange: grid access outside its bounds
//
// Use errors.Is to test for them.
//
// # Thread Safety
//
// A Descriptor is immutable after construction and may be shared between goroutines.
// A FeatureGrid is not synchronized; it is owned by the call that produced it.
package hog
