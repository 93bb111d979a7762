package hog

import (
	"fmt"
	"image"
)

// Descriptor computes HOG feature grids for a fixed bin count and cell size.
type Descriptor struct {
	angles     AngleTable
	cellWidth  int
	cellHeight int
}

// New creates a Descriptor with nAngles orientation bins over cells of
// cellWidth x cellHeight pixels.
func New(nAngles, cellWidth, cellHeight int) (*Descriptor, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: cell size must be positive, got %dx%d",
			ErrInvalidConfiguration, cellWidth, cellHeight)
	}
	angles, err := NewAngleTable(nAngles)
	if err != nil {
		return nil, err
	}
	return &Descriptor{
		angles:     angles,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}, nil
}

// Angles returns the orientation boundary table.
func (d *Descriptor) Angles() AngleTable { return d.angles }

// CellWidth returns the cell width in pixels.
func (d *Descriptor) CellWidth() int { return d.cellWidth }

// CellHeight returns the cell height in pixels.
func (d *Descriptor) CellHeight() int { return d.cellHeight }

// Geometry returns the number of cell rows and columns that fit in a width x height
// image after reserving the 1-pixel border.
func (d *Descriptor) Geometry(width, height int) (rows, columns int, err error) {
	rows = (height - 2) / d.cellHeight
	columns = (width - 2) / d.cellWidth
	if rows <= 0 || columns <= 0 {
		return 0, 0, fmt.Errorf("%w: image %dx%d holds %dx%d cells of %dx%d",
			ErrInvalidDimensions, width, height, rows, columns, d.cellWidth, d.cellHeight)
	}
	return rows, columns, nil
}

// CellCenter returns the pixel at the middle of cell (row, column).
func (d *Descriptor) CellCenter(row, column int) image.Point {
	return image.Point{
		X: 1 + column*d.cellWidth + d.cellWidth/2,
		Y: 1 + row*d.cellHeight + d.cellHeight/2,
	}
}

// CellBounds returns the inclusive pixel range [first, last] covered by cell (row, column).
func (d *Descriptor) CellBounds(row, column int) (first, last image.Point) {
	first = image.Point{X: 1 + column*d.cellWidth, Y: 1 + row*d.cellHeight}
	last = image.Point{X: (column + 1) * d.cellWidth, Y: (row + 1) * d.cellHeight}
	return first, last
}

// FindFeature computes the normalized feature grid of in.
//
// Every bin holds the strongest L1 gradient magnitude observed for that orientation
// inside the cell, rescaled so the global maximum is 255. When the image has no
// gradient at all, the all-zero grid is returned along with an error wrapping
// ErrDegenerateInput.
func (d *Descriptor) FindFeature(in *Intensity) (*FeatureGrid, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil intensity grid", ErrInvalidDimensions)
	}
	if len(in.Pix) != in.Width*in.Height {
		return nil, fmt.Errorf("%w: intensity buffer holds %d values for %dx%d",
			ErrInvalidDimensions, len(in.Pix), in.Width, in.Height)
	}

	rows, columns, err := d.Geometry(in.Width, in.Height)
	if err != nil {
		return nil, err
	}

	feature, err := NewFeatureGrid(rows, columns, d.angles.Bins())
	if err != nil {
		return nil, err
	}

	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			first, last := d.CellBounds(row, column)
			for y := first.Y; y <= last.Y; y++ {
				for x := first.X; x <= last.X; x++ {
					dx, dy := Gradient(in, x, y)
					bin := d.angles.Quantize(Orientation(dx, dy))
					feature.update(row, column, bin, Magnitude(dx, dy))
				}
			}
		}
	}

	if err := feature.Normalize(); err != nil {
		return feature, fmt.Errorf("failed to normalize %dx%d image: %w", in.Width, in.Height, err)
	}
	return feature, nil
}
