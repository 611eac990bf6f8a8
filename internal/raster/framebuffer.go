package raster

import (
	"image"
)

// Framebuffer buffers a whole frame so it can be pushed to a panel in one pass.
type Framebuffer struct {
	img    *image.RGBA
	width  int
	height int
	writes int
}

// NewFramebuffer returns an opaque black frame.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return &Framebuffer{img: img, width: width, height: height}
}

func (f *Framebuffer) Bounds() (int, int) { return f.width, f.height }

// DrawPixel stores one pixel; out-of-range writes are ignored.
func (f *Framebuffer) DrawPixel(x, y int, c Color) {
	if !InBounds(x, y, f.width, f.height) {
		return
	}
	off := f.img.PixOffset(x, y)
	f.img.Pix[off+0] = c.R()
	f.img.Pix[off+1] = c.G()
	f.img.Pix[off+2] = c.B()
	f.img.Pix[off+3] = 0xFF
	f.writes++
}

// At returns the stored pixel, or Black outside the frame.
func (f *Framebuffer) At(x, y int) Color {
	if !InBounds(x, y, f.width, f.height) {
		return Black
	}
	return FromColor(f.img.RGBAAt(x, y))
}

// Fill paints the whole frame.
func (f *Framebuffer) Fill(c Color) {
	f.FillRect(0, 0, f.width-1, f.height-1, c)
}

// FillRect paints the inclusive rectangle (x0,y0)-(x1,y1), clipped to the frame.
func (f *Framebuffer) FillRect(x0, y0, x1, y1 int, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, f.width-1), min(y1, f.height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.DrawPixel(x, y, c)
		}
	}
}

// Count returns how many pixels currently hold c.
func (f *Framebuffer) Count(c Color) int {
	n := 0
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

// Writes is the number of in-bounds DrawPixel calls since creation.
func (f *Framebuffer) Writes() int { return f.writes }

// Image exposes the backing image. Callers must not resize it.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// Flush pushes every pixel of the frame to dst in row-major order.
func (f *Framebuffer) Flush(dst Surface) {
	if dst == nil {
		return
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			dst.DrawPixel(x, y, f.At(x, y))
		}
	}
}
