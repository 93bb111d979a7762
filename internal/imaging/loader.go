package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/ironsheep/hog-tools-mcp/internal/hog"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache keeps decoded images keyed by path so that repeated tool calls on the
// same file decode it once. It is safe for concurrent use.
//
// Entries stay until Evict is called. Paths are used verbatim, so a relative and an
// absolute path to one file are cached separately.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it on first use.
// PNG, JPEG, GIF, BMP, TIFF and WebP are decoded.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict drops path from the cache. The next Load reads the file again.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// CellGeometry is how a descriptor partitions an image of a given size.
type CellGeometry struct {
	AngleBins  int `json:"angle_bins"`
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
	Rows       int `json:"rows"`
	Columns    int `json:"columns"`

	// RemainderX and RemainderY count interior pixels right of the last cell
	// column and below the last cell row. They do not contribute to the descriptor.
	RemainderX int `json:"remainder_x"`
	RemainderY int `json:"remainder_y"`

	// Usable is false when not even one cell fits.
	Usable bool `json:"usable"`
}

// GeometryOf returns the cell partition d applies to a width x height image.
// An image too small for a single cell is reported with Usable unset and its whole
// interior as remainder.
func GeometryOf(d *hog.Descriptor, width, height int) CellGeometry {
	g := CellGeometry{
		AngleBins:  d.Angles().Bins(),
		CellWidth:  d.CellWidth(),
		CellHeight: d.CellHeight(),
	}
	rows, columns, err := d.Geometry(width, height)
	if err == nil {
		g.Rows, g.Columns, g.Usable = rows, columns, true
	}
	g.RemainderX = interior(width) - g.Columns*g.CellWidth
	g.RemainderY = interior(height) - g.Rows*g.CellHeight
	return g
}

func interior(n int) int {
	if n < 2 {
		return 0
	}
	return n - 2
}

// ImageInfo describes an image file and its cell partition.
type ImageInfo struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Format        string       `json:"format"`
	FileSizeBytes int64        `json:"file_size_bytes"`
	Geometry      CellGeometry `json:"geometry"`
}

// Inspect loads path through cache and reports its size, format and the geometry
// d would use for it. Format comes from the extension, see FormatFromPath.
func Inspect(cache *ImageCache, path string, d *hog.Descriptor) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	b := img.Bounds()
	return &ImageInfo{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        FormatFromPath(path),
		FileSizeBytes: stat.Size(),
		Geometry:      GeometryOf(d, b.Dx(), b.Dy()),
	}, nil
}

// FormatFromPath maps a file extension to a format name.
//
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - ".bmp" -> "bmp"
//   - ".tif", ".tiff" -> "tiff"
//   - ".webp" -> "webp"
//   - Other extensions -> "unknown"
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	default:
		return "unknown"
	}
}
