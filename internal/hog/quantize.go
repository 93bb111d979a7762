package hog

import "math"

// Orientation returns the undirected direction of the gradient (dx, dy).
//
// Negative angles are folded by adding π, so opposite gradients share an
// orientation. The result lies in [0, π]; exactly π only for dy == 0, dx < 0,
// which Quantize maps onto bin 0.
func Orientation(dx, dy int) float64 {
	alpha := math.Atan2(float64(dy), float64(dx))
	if alpha < 0 {
		alpha += math.Pi
	}
	return alpha
}

// Quantize returns the bin whose boundary is closest to angle.
//
// Boundary 0 is the implicit starting candidate with distance angle. Only a
// strictly smaller distance replaces the current best, so ties resolve to the
// lowest index. Boundary nAngles (π) folds onto bin 0.
func (t AngleTable) Quantize(angle float64) int {
	best := angle
	index := 0
	for i := 1; i < len(t.values); i++ {
		if d := math.Abs(t.values[i] - angle); d < best {
			best = d
			index = i
		}
	}
	return index % t.Bins()
}
