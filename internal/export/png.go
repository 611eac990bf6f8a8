package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/san-kum/tinyraster/internal/raster"
	"github.com/san-kum/tinyraster/internal/viz"
)

// Scale enlarges a frame by an integer factor with nearest-neighbour
// sampling so pixels stay square.
func Scale(fb *raster.Framebuffer, factor int) *image.RGBA {
	src := fb.Image()
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the frame at the given scale.
func WritePNG(w io.Writer, fb *raster.Framebuffer, factor int) error {
	if fb == nil {
		return fmt.Errorf("export: nil framebuffer")
	}
	return png.Encode(w, Scale(fb, factor))
}

// SavePNG writes the frame to path.
func SavePNG(path string, fb *raster.Framebuffer, factor int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, fb, factor); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveSVG writes the frame as SVG to path.
func SaveSVG(path string, fb *raster.Framebuffer, scale float64, background raster.Color) error {
	return os.WriteFile(path, []byte(FramebufferToSVG(fb, scale, background)), 0644)
}

// SaveBrailleSVG writes a braille canvas as a dot-matrix SVG to path.
func SaveBrailleSVG(path string, canvas *viz.Canvas, scale float64) error {
	if canvas == nil {
		return fmt.Errorf("export: nil canvas")
	}
	return os.WriteFile(path, []byte(CanvasToSVG(canvas, scale)), 0644)
}
