package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
	"github.com/ironsheep/hog-tools-mcp/internal/imaging"
	"github.com/ironsheep/hog-tools-mcp/internal/server"
)

// envFlags maps render flags to the environment variables they override.
var envFlags = map[string]string{
	"angles":      server.EnvAngles,
	"cell-width":  server.EnvCellWidth,
	"cell-height": server.EnvCellHeight,
}

// runRender computes the descriptor of one image and writes its rendering.
// Descriptor flags left unset fall back to the HOG_MCP_* environment. A variable
// whose flag is given explicitly is not read.
func runRender(args []string, output io.Writer) error {
	def := server.DefaultConfig()

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(output)
	in := fs.String("in", "", "input image `path`")
	out := fs.String("out", "", "output image `path` (.png, .jpg, .jpeg or .bmp)")
	angles := fs.Int("angles", def.Angles, "number of orientation bins (env "+server.EnvAngles+")")
	cellWidth := fs.Int("cell-width", def.CellWidth, "cell width in pixels (env "+server.EnvCellWidth+")")
	cellHeight := fs.Int("cell-height", def.CellHeight, "cell height in pixels (env "+server.EnvCellHeight+")")
	mode := fs.String("mode", string(imaging.RenderGray), "rendering mode: gray or orientation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := make(map[string]bool)
	var skip []string
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
		if env, ok := envFlags[f.Name]; ok {
			skip = append(skip, env)
		}
	})
	cfg, err := server.ConfigFromEnvExcept(skip...)
	if err != nil {
		return err
	}
	if !set["angles"] {
		*angles = cfg.Angles
	}
	if !set["cell-width"] {
		*cellWidth = cfg.CellWidth
	}
	if !set["cell-height"] {
		*cellHeight = cfg.CellHeight
	}

	if *in == "" || *out == "" {
		fs.Usage()
		return errors.New("both -in and -out are required")
	}

	renderMode, err := imaging.ParseRenderMode(*mode)
	if err != nil {
		return err
	}
	d, err := hog.New(*angles, *cellWidth, *cellHeight)
	if err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(*in)
	if err != nil {
		return err
	}
	intensity, err := imaging.Luma(img)
	if err != nil {
		return err
	}

	grid, err := d.FindFeature(intensity)
	if errors.Is(err, hog.ErrDegenerateInput) {
		log.Printf("%s has no gradient, rendering an empty descriptor", *in)
	} else if err != nil {
		return err
	}

	b := img.Bounds()
	rendering, err := imaging.RenderFeatures(d, grid, b.Dx(), b.Dy(), renderMode)
	if err != nil {
		return err
	}
	if err := imaging.SaveImage(*out, rendering); err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %dx%d cells, %d bins -> %s\n", *in, grid.Rows(), grid.Columns(), grid.AngleBins(), *out)
	return nil
}
