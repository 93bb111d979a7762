package hog

import "errors"

var (
	// ErrInvalidConfiguration is returned when the bin count or a cell dimension is not positive.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidDimensions is returned when an image or grid cannot hold at least one cell.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrDegenerateInput is returned by normalization when every bin is zero.
	ErrDegenerateInput = errors.New("degenerate input: zero gradient everywhere")

	// ErrIndexOutOfRange is returned for grid accesses outside the allocated bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNegativeMagnitude is returned when a negative value would be stored in a grid.
	ErrNegativeMagnitude = errors.New("negative magnitude")

	// ErrShapeMismatch is returned when comparing grids of different shapes.
	ErrShapeMismatch = errors.New("feature grid shape mismatch")
)
