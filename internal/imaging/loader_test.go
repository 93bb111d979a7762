package imaging

import (
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTempPNG(t, createInMemoryImage(34, 18, color.White))
	defer os.Remove(imgPath)

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img1.Bounds(); b.Dx() != 34 || b.Dy() != 18 {
		t.Errorf("dimensions: got %dx%d, want 34x18", b.Dx(), b.Dy())
	}

	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return the cached image")
	}
}

func TestImageCache_Load_Errors(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/nonexistent/path/to/image.png"},
		{"not an image", garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewImageCache().Load(tt.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestImageCache_EvictReloads(t *testing.T) {
	cache := NewImageCache()
	path := filepath.Join(t.TempDir(), "out.png")

	if err := SaveImage(path, createInMemoryImage(20, 20, color.Black)); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Overwrite with a larger image; the cache still holds the old one.
	if err := SaveImage(path, createInMemoryImage(40, 30, color.White)); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	stale, _ := cache.Load(path)
	if stale.Bounds().Dx() != 20 {
		t.Fatalf("expected cached 20px image, got %dpx", stale.Bounds().Dx())
	}

	cache.Evict(path)
	fresh, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if b := fresh.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("after Evict: got %dx%d, want 40x30", b.Dx(), b.Dy())
	}

	// Evicting an unknown path is a no-op.
	cache.Evict("/nonexistent/path")
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTempPNG(t, createEdgeImage(34, 18, 17))
	defer os.Remove(imgPath)

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestGeometryOf(t *testing.T) {
	tests := []struct {
		name          string
		cellW, cellH  int
		width, height int
		want          CellGeometry
	}{
		{
			name: "exact fit", cellW: 8, cellH: 8, width: 18, height: 18,
			want: CellGeometry{AngleBins: 9, CellWidth: 8, CellHeight: 8, Rows: 2, Columns: 2, Usable: true},
		},
		{
			name: "remainder", cellW: 8, cellH: 8, width: 37, height: 21,
			want: CellGeometry{AngleBins: 9, CellWidth: 8, CellHeight: 8, Rows: 2, Columns: 4, RemainderX: 3, RemainderY: 3, Usable: true},
		},
		{
			name: "wide cells", cellW: 16, cellH: 4, width: 34, height: 18,
			want: CellGeometry{AngleBins: 9, CellWidth: 16, CellHeight: 4, Rows: 4, Columns: 2, Usable: true},
		},
		{
			name: "too narrow", cellW: 8, cellH: 8, width: 9, height: 40,
			want: CellGeometry{AngleBins: 9, CellWidth: 8, CellHeight: 8, RemainderX: 7, RemainderY: 38},
		},
		{
			name: "single pixel", cellW: 8, cellH: 8, width: 1, height: 1,
			want: CellGeometry{AngleBins: 9, CellWidth: 8, CellHeight: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeometryOf(mustDescriptor(t, 9, tt.cellW, tt.cellH), tt.width, tt.height)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTempPNG(t, createEdgeImage(37, 21, 17))
	defer os.Remove(imgPath)

	info, err := Inspect(cache, imgPath, mustDescriptor(t, 4, 8, 8))
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Width != 37 || info.Height != 21 {
		t.Errorf("dimensions: got %dx%d, want 37x21", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
	want := CellGeometry{AngleBins: 4, CellWidth: 8, CellHeight: 8, Rows: 2, Columns: 4, RemainderX: 3, RemainderY: 3, Usable: true}
	if info.Geometry != want {
		t.Errorf("geometry: got %+v, want %+v", info.Geometry, want)
	}
}

func TestInspect_NonExistent(t *testing.T) {
	_, err := Inspect(NewImageCache(), "/nonexistent/image.png", mustDescriptor(t, 9, 8, 8))
	if err == nil {
		t.Error("Inspect should fail for a missing file")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.png", "png"},
		{"/tmp/A.PNG", "png"},
		{"photo.jpg", "jpeg"},
		{"photo.JPEG", "jpeg"},
		{"anim.gif", "gif"},
		{"scan.bmp", "bmp"},
		{"scan.tif", "tiff"},
		{"scan.tiff", "tiff"},
		{"pic.webp", "webp"},
		{"notes.txt", "unknown"},
		{"noext", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q): got %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}
