package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
	"github.com/ironsheep/hog-tools-mcp/internal/imaging"
)

// descriptorArgs are the parameters shared by the hog_* tools. Zero values fall
// back to the server config.
type descriptorArgs struct {
	Path       string          `json:"path"`
	NAngles    int             `json:"n_angles"`
	CellWidth  int             `json:"cell_width"`
	CellHeight int             `json:"cell_height"`
	Region     *imaging.Region `json:"region,omitempty"`
	Scale      float64         `json:"scale"`
}

// analysis is one image run through the descriptor.
type analysis struct {
	desc       *hog.Descriptor
	img        image.Image
	grid       *hog.FeatureGrid
	degenerate bool
}

func (s *Server) descriptorFor(a descriptorArgs) (*hog.Descriptor, error) {
	nAngles, cellWidth, cellHeight := a.NAngles, a.CellWidth, a.CellHeight
	if nAngles == 0 {
		nAngles = s.cfg.Angles
	}
	if cellWidth == 0 {
		cellWidth = s.cfg.CellWidth
	}
	if cellHeight == 0 {
		cellHeight = s.cfg.CellHeight
	}
	return hog.New(nAngles, cellWidth, cellHeight)
}

// prepare loads a.Path and applies the region and scale of a.
func (s *Server) prepare(a descriptorArgs) (image.Image, error) {
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	scale := a.Scale
	if scale == 0 {
		scale = 1.0
	}
	return imaging.CropRegion(img, a.Region, scale)
}

// describe computes the feature grid of img. An image without gradient is not an
// error here; it is flagged as degenerate with an all-zero grid.
func describe(d *hog.Descriptor, img image.Image) (*analysis, error) {
	in, err := imaging.Luma(img)
	if err != nil {
		return nil, err
	}

	grid, err := d.FindFeature(in)
	degenerate := errors.Is(err, hog.ErrDegenerateInput)
	if err != nil && !degenerate {
		return nil, err
	}
	return &analysis{desc: d, img: img, grid: grid, degenerate: degenerate}, nil
}

func (s *Server) analyze(a descriptorArgs) (*analysis, error) {
	d, err := s.descriptorFor(a)
	if err != nil {
		return nil, err
	}
	img, err := s.prepare(a)
	if err != nil {
		return nil, err
	}
	return describe(d, img)
}

func degrees(radians float64) float64 {
	return math.Round(radians*180/math.Pi*1000) / 1000
}

// === hog_compute ===

// CellSummary is the strongest orientation of one cell.
type CellSummary struct {
	Row          int     `json:"row"`
	Col          int     `json:"col"`
	Bin          int     `json:"bin"`
	AngleDegrees float64 `json:"angle_degrees"`
	Magnitude    int     `json:"magnitude"`
}

// DescriptorResult describes a computed feature grid.
type DescriptorResult struct {
	ImageWidth    int           `json:"image_width"`
	ImageHeight   int           `json:"image_height"`
	Rows          int           `json:"rows"`
	Columns       int           `json:"columns"`
	AngleBins     int           `json:"angle_bins"`
	CellWidth     int           `json:"cell_width"`
	CellHeight    int           `json:"cell_height"`
	AnglesDegrees []float64     `json:"angles_degrees"`
	Degenerate    bool          `json:"degenerate"`
	Dominant      []CellSummary `json:"dominant"`
	Histogram     [][][]int     `json:"histogram,omitempty"`
}

type hogComputeArgs struct {
	descriptorArgs
	IncludeHistogram bool `json:"include_histogram"`
}

func (s *Server) handleHOGCompute(args json.RawMessage) (interface{}, error) {
	var a hogComputeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	an, err := s.analyze(a.descriptorArgs)
	if err != nil {
		return nil, err
	}
	return newDescriptorResult(an, a.IncludeHistogram), nil
}

func newDescriptorResult(an *analysis, includeHistogram bool) *DescriptorResult {
	g := an.grid
	angles := an.desc.Angles()

	result := &DescriptorResult{
		ImageWidth:    an.img.Bounds().Dx(),
		ImageHeight:   an.img.Bounds().Dy(),
		Rows:          g.Rows(),
		Columns:       g.Columns(),
		AngleBins:     g.AngleBins(),
		CellWidth:     an.desc.CellWidth(),
		CellHeight:    an.desc.CellHeight(),
		AnglesDegrees: make([]float64, angles.Bins()),
		Degenerate:    an.degenerate,
		Dominant:      make([]CellSummary, 0, g.Rows()*g.Columns()),
	}
	for i := range result.AnglesDegrees {
		result.AnglesDegrees[i] = degrees(angles.At(i))
	}
	if includeHistogram {
		result.Histogram = make([][][]int, g.Rows())
	}

	for row := 0; row < g.Rows(); row++ {
		if includeHistogram {
			result.Histogram[row] = make([][]int, g.Columns())
		}
		for col := 0; col < g.Columns(); col++ {
			cell, _ := g.Cell(row, col)
			best := 0
			for bin, v := range cell {
				if v > cell[best] {
					best = bin
				}
			}
			result.Dominant = append(result.Dominant, CellSummary{
				Row:          row,
				Col:          col,
				Bin:          best,
				AngleDegrees: degrees(angles.At(best)),
				Magnitude:    cell[best],
			})
			if includeHistogram {
				result.Histogram[row][col] = cell
			}
		}
	}

	return result
}

// === hog_render ===

// RenderResult is a rendered feature grid.
type RenderResult struct {
	imaging.ImageResult
	Rows       int    `json:"rows"`
	Columns    int    `json:"columns"`
	Degenerate bool   `json:"degenerate"`
	SavedTo    string `json:"saved_to,omitempty"`
}

type hogRenderArgs struct {
	descriptorArgs
	Mode         string `json:"mode"`
	OverlayCells bool   `json:"overlay_cells"`
	OutputPath   string `json:"output_path"`
}

func (s *Server) handleHOGRender(args json.RawMessage) (interface{}, error) {
	var a hogRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := imaging.ParseRenderMode(a.Mode)
	if err != nil {
		return nil, err
	}
	an, err := s.analyze(a.descriptorArgs)
	if err != nil {
		return nil, err
	}

	b := an.img.Bounds()
	var out image.Image
	out, err = imaging.RenderFeatures(an.desc, an.grid, b.Dx(), b.Dy(), mode)
	if err != nil {
		return nil, err
	}
	if a.OverlayCells {
		out = imaging.CellGridOverlay(out, an.desc, an.grid.Rows(), an.grid.Columns(), false, "#FF000080")
	}

	if a.OutputPath != "" {
		if err := imaging.SaveImage(a.OutputPath, out); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		s.debugf("rendering saved to %s", a.OutputPath)
	}

	encoded, err := imaging.EncodePNGBase64(out)
	if err != nil {
		return nil, err
	}
	return &RenderResult{
		ImageResult: *encoded,
		Rows:        an.grid.Rows(),
		Columns:     an.grid.Columns(),
		Degenerate:  an.degenerate,
		SavedTo:     a.OutputPath,
	}, nil
}

// === hog_compare ===

// CompareResult is the distance between two descriptors.
type CompareResult struct {
	Metric      string  `json:"metric"`
	Distance    float64 `json:"distance"`
	Rows        int     `json:"rows"`
	Columns     int     `json:"columns"`
	AngleBins   int     `json:"angle_bins"`
	Resampled   bool    `json:"resampled"`
	DegenerateA bool    `json:"degenerate_a"`
	DegenerateB bool    `json:"degenerate_b"`
}

type hogCompareArgs struct {
	descriptorArgs
	OtherPath string `json:"other_path"`
	Metric    string `json:"metric"`
}

func (s *Server) handleHOGCompare(args json.RawMessage) (interface{}, error) {
	var a hogCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	metric, err := hog.ParseMetric(a.Metric)
	if err != nil {
		return nil, err
	}
	if a.OtherPath == "" {
		return nil, fmt.Errorf("other_path is required")
	}

	first, err := s.analyze(a.descriptorArgs)
	if err != nil {
		return nil, err
	}

	// region and scale shape the first image only.
	other, err := s.cache.Load(a.OtherPath)
	if err != nil {
		return nil, err
	}
	b := first.img.Bounds()
	resampled := other.Bounds().Dx() != b.Dx() || other.Bounds().Dy() != b.Dy()
	second, err := describe(first.desc, imaging.Resample(other, b.Dx(), b.Dy()))
	if err != nil {
		return nil, err
	}

	distance, err := hog.Distance(first.grid, second.grid, metric)
	if err != nil {
		return nil, err
	}

	return &CompareResult{
		Metric:      string(metric),
		Distance:    distance,
		Rows:        first.grid.Rows(),
		Columns:     first.grid.Columns(),
		AngleBins:   first.grid.AngleBins(),
		Resampled:   resampled,
		DegenerateA: first.degenerate,
		DegenerateB: second.degenerate,
	}, nil
}

// === hog_cell ===

// BinValue is one histogram bin of a cell.
type BinValue struct {
	Bin          int     `json:"bin"`
	AngleDegrees float64 `json:"angle_degrees"`
	Magnitude    int     `json:"magnitude"`
}

// CellResult is the histogram of one cell.
type CellResult struct {
	Row     int        `json:"row"`
	Col     int        `json:"col"`
	CenterX int        `json:"center_x"`
	CenterY int        `json:"center_y"`
	Bins    []BinValue `json:"bins"`
}

type hogCellArgs struct {
	descriptorArgs
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s *Server) handleHOGCell(args json.RawMessage) (interface{}, error) {
	var a hogCellArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	an, err := s.analyze(a.descriptorArgs)
	if err != nil {
		return nil, err
	}

	cell, err := an.grid.Cell(a.Row, a.Col)
	if err != nil {
		return nil, err
	}

	angles := an.desc.Angles()
	center := an.desc.CellCenter(a.Row, a.Col)
	result := &CellResult{
		Row:     a.Row,
		Col:     a.Col,
		CenterX: center.X,
		CenterY: center.Y,
		Bins:    make([]BinValue, len(cell)),
	}
	for bin, v := range cell {
		result.Bins[bin] = BinValue{Bin: bin, AngleDegrees: degrees(angles.At(bin)), Magnitude: v}
	}
	return result, nil
}
