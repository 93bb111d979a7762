package hog

import (
	"fmt"
	"math"
)

// AngleTable holds nAngles+1 evenly spaced orientation boundaries over [0, π].
//
// Boundary i is the angle of bin i; the last boundary (π) denotes the same
// undirected orientation as boundary 0.
type AngleTable struct {
	values []float64
}

// NewAngleTable builds the boundary table for nAngles bins.
func NewAngleTable(nAngles int) (AngleTable, error) {
	if nAngles <= 0 {
		return AngleTable{}, fmt.Errorf("%w: angle bins must be positive, got %d", ErrInvalidConfiguration, nAngles)
	}

	values := make([]float64, nAngles+1)
	delta := math.Pi / float64(nAngles)
	for i := 1; i <= nAngles; i++ {
		values[i] = values[i-1] + delta
	}
	return AngleTable{values: values}, nil
}

// Bins returns the number of orientation bins (one less than Len).
func (t AngleTable) Bins() int {
	return len(t.values) - 1
}

// Len returns the number of boundaries.
func (t AngleTable) Len() int {
	return len(t.values)
}

// At returns boundary i in radians.
func (t AngleTable) At(i int) float64 {
	return t.values[i]
}

// Values returns a copy of the boundaries.
func (t AngleTable) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return out
}
