package hog

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric selects how two feature grids are compared.
type Metric string

const (
	MetricL1     Metric = "l1"
	MetricL2     Metric = "l2"
	MetricCosine Metric = "cosine"
)

// ParseMetric converts a metric name. An empty name selects MetricL2.
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case "":
		return MetricL2, nil
	case MetricL1, MetricL2, MetricCosine:
		return Metric(name), nil
	default:
		return "", fmt.Errorf("unknown metric: %s", name)
	}
}

// Vector returns the grid as a float64 slice in [row][column][bin] order.
func (g *FeatureGrid) Vector() []float64 {
	out := make([]float64, len(g.data))
	for i, v := range g.data {
		out[i] = float64(v)
	}
	return out
}

// Distance compares two grids of identical shape.
//
// The cosine distance is 1 - cos(a, b); it is 0 when both grids are all zero and 1
// when exactly one of them is.
func Distance(a, b *FeatureGrid, metric Metric) (float64, error) {
	if a.rows != b.rows || a.columns != b.columns || a.angleBins != b.angleBins {
		return 0, fmt.Errorf("%w: %dx%dx%d vs %dx%dx%d", ErrShapeMismatch,
			a.rows, a.columns, a.angleBins, b.rows, b.columns, b.angleBins)
	}

	va, vb := a.Vector(), b.Vector()
	switch metric {
	case MetricL1:
		return floats.Distance(va, vb, 1), nil
	case MetricL2:
		return floats.Distance(va, vb, 2), nil
	case MetricCosine:
		na, nb := floats.Norm(va, 2), floats.Norm(vb, 2)
		if na == 0 && nb == 0 {
			return 0, nil
		}
		if na == 0 || nb == 0 {
			return 1, nil
		}
		return math.Max(0, 1-floats.Dot(va, vb)/(na*nb)), nil
	default:
		return 0, fmt.Errorf("unknown metric: %s", metric)
	}
}
