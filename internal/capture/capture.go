package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/biondi/pkg/geometry"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrEmptyCapture is returned for a capture with no pixels
var ErrEmptyCapture = errors.New("capture has no pixels")

// Region is a captured rectangle of the microscope view. Only its
// dimensions are used to bound measurement coordinates.
type Region struct {
	Width  int
	Height int
	Pixels image.Image
}

// Bounds returns the coordinate space of the region
func (r Region) Bounds() geometry.Bounds {
	return geometry.NewBounds(r.Width, r.Height)
}

// Source produces the capture associated with one body record
type Source interface {
	Capture(ctx context.Context) (Region, error)
}

// Extensions lists the file types FileSource can decode
var Extensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp"}

// Supported reports whether path has a decodable capture extension
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FileSource decodes a capture saved to disk
type FileSource struct {
	Path string
}

// Capture implements Source
func (s FileSource) Capture(ctx context.Context) (Region, error) {
	if err := ctx.Err(); err != nil {
		return Region{}, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return Region{}, fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Region{}, fmt.Errorf("failed to decode %s: %w", s.Path, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return Region{}, fmt.Errorf("%s: %w", s.Path, ErrEmptyCapture)
	}
	return Region{Width: b.Dx(), Height: b.Dy(), Pixels: img}, nil
}

// Fixed is a Source returning a blank region of the given size, used when
// measuring without a saved capture
type Fixed struct {
	Width  int
	Height int
}

// Capture implements Source
func (s Fixed) Capture(context.Context) (Region, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return Region{}, ErrEmptyCapture
	}
	return Region{Width: s.Width, Height: s.Height}, nil
}
