package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
	"github.com/lucasb-eyer/go-colorful"
)

// RenderMode selects how histogram bins are colored.
type RenderMode string

const (
	// RenderGray draws every bin as a gray level equal to its magnitude.
	RenderGray RenderMode = "gray"

	// RenderOrientation colors every bin by its angle (hue) with the magnitude as
	// brightness.
	RenderOrientation RenderMode = "orientation"
)

// ParseRenderMode converts a mode name. An empty name selects RenderGray.
func ParseRenderMode(name string) (RenderMode, error) {
	switch RenderMode(name) {
	case "", RenderGray:
		return RenderGray, nil
	case RenderOrientation:
		return RenderOrientation, nil
	default:
		return "", fmt.Errorf("unknown render mode: %s", name)
	}
}

// RenderFeatures draws a normalized feature grid onto a black width x height canvas.
//
// Parameters:
//   - d: The descriptor that produced the grid; supplies cell size and bin angles.
//   - g: A normalized grid (entries in 0-255).
//   - width, height: Size of the canvas, normally the source image size.
//   - mode: Bin coloring.
//
// Returns:
//   - *image.RGBA: The visualization.
//   - error: Non-nil if the grid does not match the descriptor or the canvas is empty.
//
// # Drawing
//
// For every (row, column, bin), in that order, one segment is drawn through the cell
// center along the bin's angle, reaching half a cell in each direction. Later bins
// overwrite earlier ones where segments cross. Pixels outside the canvas are clipped.
func RenderFeatures(d *hog.Descriptor, g *hog.FeatureGrid, width, height int, mode RenderMode) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	angles := d.Angles()
	if g.AngleBins() != angles.Bins() {
		return nil, fmt.Errorf("grid has %d angle bins, descriptor has %d", g.AngleBins(), angles.Bins())
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	halfW := 0.5 * float64(d.CellWidth())
	halfH := 0.5 * float64(d.CellHeight())

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			center := d.CellCenter(row, col)
			cell, err := g.Cell(row, col)
			if err != nil {
				return nil, err
			}
			for bin, magnitude := range cell {
				angle := angles.At(bin)
				cos, sin := math.Cos(angle), math.Sin(angle)

				x1 := int(float64(center.X) + halfW*cos)
				y1 := int(float64(center.Y) + halfH*sin)
				x2 := int(float64(center.X) - halfW*cos)
				y2 := int(float64(center.Y) - halfH*sin)

				drawLine(canvas, x1, y1, x2, y2, binColor(mode, angle, magnitude))
			}
		}
	}

	return canvas, nil
}

func binColor(mode RenderMode, angle float64, magnitude int) color.RGBA {
	v := uint8(clamp(magnitude, 0, 255))
	if mode != RenderOrientation {
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}

	hue := angle * 360 / math.Pi
	c := colorful.Hsv(math.Mod(hue, 360), 1, float64(v)/255).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawLine rasterizes the segment (x1,y1)-(x2,y2) inclusive with Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	bounds := img.Bounds()

	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	e := dx + dy
	x, y := x1, y1
	for {
		if (image.Point{X: x, Y: y}).In(bounds) {
			img.SetRGBA(x, y, c)
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
