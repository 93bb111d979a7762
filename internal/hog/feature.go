package hog

import (
	"fmt"
	"math/bits"
)

// FeatureGrid is a rows x columns x angle-bins histogram of non-negative magnitudes.
//
// Entries live in a single row-major buffer indexed as [row][column][bin]. Changing
// any dimension reallocates the buffer and discards prior contents.
type FeatureGrid struct {
	rows      int
	columns   int
	angleBins int

	data []int
}

// NewFeatureGrid allocates a zeroed grid.
func NewFeatureGrid(rows, columns, angleBins int) (*FeatureGrid, error) {
	if rows <= 0 || columns <= 0 || angleBins <= 0 {
		return nil, fmt.Errorf("%w: feature grid %dx%dx%d", ErrInvalidDimensions, rows, columns, angleBins)
	}
	g := &FeatureGrid{rows: rows, columns: columns, angleBins: angleBins}
	g.realloc()
	return g, nil
}

func (g *FeatureGrid) realloc() {
	g.data = make([]int, g.rows*g.columns*g.angleBins)
}

func (g *FeatureGrid) index(row, column, bin int) int {
	return (row*g.columns+column)*g.angleBins + bin
}

func (g *FeatureGrid) checkIndex(row, column, bin int) error {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns || bin < 0 || bin >= g.angleBins {
		return fmt.Errorf("%w: (%d,%d,%d) in grid %dx%dx%d",
			ErrIndexOutOfRange, row, column, bin, g.rows, g.columns, g.angleBins)
	}
	return nil
}

// Rows returns the number of cell rows.
func (g *FeatureGrid) Rows() int { return g.rows }

// Columns returns the number of cell columns.
func (g *FeatureGrid) Columns() int { return g.columns }

// AngleBins returns the number of orientation bins per cell.
func (g *FeatureGrid) AngleBins() int { return g.angleBins }

// SetRows changes the row count. The grid is cleared.
func (g *FeatureGrid) SetRows(rows int) error {
	if rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidDimensions, rows)
	}
	g.rows = rows
	g.realloc()
	return nil
}

// SetColumns changes the column count. The grid is cleared.
func (g *FeatureGrid) SetColumns(columns int) error {
	if columns <= 0 {
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidDimensions, columns)
	}
	g.columns = columns
	g.realloc()
	return nil
}

// SetAngleBins changes the bin count. The grid is cleared.
func (g *FeatureGrid) SetAngleBins(angleBins int) error {
	if angleBins <= 0 {
		return fmt.Errorf("%w: angle bins must be positive, got %d", ErrInvalidDimensions, angleBins)
	}
	g.angleBins = angleBins
	g.realloc()
	return nil
}

// Get returns the magnitude stored at (row, column, bin).
func (g *FeatureGrid) Get(row, column, bin int) (int, error) {
	if err := g.checkIndex(row, column, bin); err != nil {
		return 0, err
	}
	return g.data[g.index(row, column, bin)], nil
}

// Update keeps the larger of the stored magnitude and magnitude.
func (g *FeatureGrid) Update(row, column, bin, magnitude int) error {
	if err := g.checkIndex(row, column, bin); err != nil {
		return err
	}
	g.update(row, column, bin, magnitude)
	return nil
}

// update is Update without bounds checking, for the descriptor's inner loop.
func (g *FeatureGrid) update(row, column, bin, magnitude int) {
	i := g.index(row, column, bin)
	if g.data[i] < magnitude {
		g.data[i] = magnitude
	}
}

// Set overwrites the magnitude at (row, column, bin).
func (g *FeatureGrid) Set(row, column, bin, magnitude int) error {
	if err := g.checkIndex(row, column, bin); err != nil {
		return err
	}
	if magnitude < 0 {
		return fmt.Errorf("%w: %d at (%d,%d,%d)", ErrNegativeMagnitude, magnitude, row, column, bin)
	}
	g.data[g.index(row, column, bin)] = magnitude
	return nil
}

// Cell returns a copy of the histogram of one cell.
func (g *FeatureGrid) Cell(row, column int) ([]int, error) {
	if err := g.checkIndex(row, column, 0); err != nil {
		return nil, err
	}
	start := g.index(row, column, 0)
	out := make([]int, g.angleBins)
	copy(out, g.data[start:start+g.angleBins])
	return out, nil
}

// Values returns a copy of the whole grid in row-major [row][column][bin] order.
func (g *FeatureGrid) Values() []int {
	out := make([]int, len(g.data))
	copy(out, g.data)
	return out
}

// Max returns the largest magnitude in the grid.
func (g *FeatureGrid) Max() int {
	m := 0
	for _, v := range g.data {
		if v > m {
			m = v
		}
	}
	return m
}

// Normalize rescales every entry to e*255/max with integer division.
//
// If every entry is zero the grid is left unchanged and ErrDegenerateInput is
// returned. Entries of any non-negative size scale without overflow.
func (g *FeatureGrid) Normalize() error {
	maxMagnitude := g.Max()
	if maxMagnitude == 0 {
		return ErrDegenerateInput
	}
	for i, v := range g.data {
		g.data[i] = scaleTo255(v, maxMagnitude)
	}
	return nil
}

// scaleTo255 returns v*255/peak for 0 <= v <= peak, peak > 0.
func scaleTo255(v, peak int) int {
	hi, lo := bits.Mul64(uint64(v), 255)
	// hi < peak because v <= peak, so Div64 cannot overflow.
	q, _ := bits.Div64(hi, lo, uint64(peak))
	return int(q)
}
