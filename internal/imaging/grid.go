package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

// CellGridOverlay draws the descriptor's cell partition over a copy of img.
//
// Only the rows x columns cells that contribute to the grid are outlined. A line is
// drawn on the first pixel column and row of every cell, starting at (1,1), and on
// the last pixel column and row of the final cells.
// When showIndices is set each cell is labeled "row,col" in its top-left corner.
// An unparsable color falls back to semi-transparent red.
func CellGridOverlay(img image.Image, d *hog.Descriptor, rows, columns int, showIndices bool, gridColorHex string) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		gridColor = color.RGBA{255, 0, 0, 128}
	}

	w, h := d.CellWidth(), d.CellHeight()
	left, top := 1, 1
	right, bottom := columns*w, rows*h

	for c := 0; c <= columns; c++ {
		x := left + c*w
		if c == columns {
			x = right
		}
		for y := top; y <= bottom; y++ {
			setClipped(result, x, y, gridColor)
		}
	}

	for r := 0; r <= rows; r++ {
		y := top + r*h
		if r == rows {
			y = bottom
		}
		for x := left; x <= right; x++ {
			setClipped(result, x, y, gridColor)
		}
	}

	if showIndices {
		labelColor := color.RGBA{255, 255, 255, 255}
		bgColor := color.RGBA{0, 0, 0, 180}
		for r := 0; r < rows; r++ {
			for c := 0; c < columns; c++ {
				first, _ := d.CellBounds(r, c)
				drawLabel(result, first.X+1, first.Y+1, fmt.Sprintf("%d,%d", r, c), labelColor, bgColor)
			}
		}
	}

	return result
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

var labelGlyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

// drawLabel draws text in a 3x5 pixel font over a filled background box.
// Characters without a glyph leave a blank.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	const charWidth, labelHeight = 4, 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < len(text)*charWidth; dx++ {
			setClipped(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		for row, line := range labelGlyphs[ch] {
			for col, pixel := range line {
				if pixel == '1' {
					setClipped(img, cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
