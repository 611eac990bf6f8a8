package raster

// Surface is anything that can receive pixels.
//
// Implementations must drop coordinates outside [0,w)×[0,h) without failing.
type Surface interface {
	Bounds() (w, h int)
	DrawPixel(x, y int, c Color)
}

// InBounds reports whether (x, y) lies on a w×h surface.
func InBounds(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

type rectFiller interface {
	FillRect(x0, y0, x1, y1 int, c Color)
}

// FillRect paints the inclusive rectangle (x0,y0)-(x1,y1) on any surface.
func FillRect(s Surface, x0, y0, x1, y1 int, c Color) {
	if f, ok := s.(rectFiller); ok {
		f.FillRect(x0, y0, x1, y1, c)
		return
	}
	w, h := s.Bounds()
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w-1), min(y1, h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.DrawPixel(x, y, c)
		}
	}
}

type filler interface {
	Fill(c Color)
}

// Clear paints the whole surface.
func Clear(s Surface, c Color) {
	if f, ok := s.(filler); ok {
		f.Fill(c)
		return
	}
	w, h := s.Bounds()
	FillRect(s, 0, 0, w-1, h-1, c)
}
