package raster

import "math"

// DrawLine draws a line between two device points using Bresenham's algorithm.
//
// Steep lines are walked along y with the axes swapped back on output, and the
// walk always runs from the smaller major coordinate to the larger, so the
// pixel set does not depend on endpoint order.
func DrawLine(s Surface, x0, y0, x1, y1 int, c Color) {
	steep := absInt(y1-y0) > absInt(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := absInt(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			s.DrawPixel(y0, x0, c)
		} else {
			s.DrawPixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// coordLimit bounds float endpoints to the panel's signed 16-bit address
// range. Larger values would make the integer walk effectively unbounded.
const coordLimit = 1<<15 - 1

func devCoord(v float64) (int, bool) {
	if math.IsNaN(v) || v > coordLimit || v < -coordLimit {
		return 0, false
	}
	return int(v), true
}

// DrawLineF truncates float endpoints toward zero and draws the line.
// Lines with a non-finite endpoint, or one beyond the 16-bit range, are
// dropped.
func DrawLineF(s Surface, x0, y0, x1, y1 float64, c Color) {
	ix0, ok0 := devCoord(x0)
	iy0, ok1 := devCoord(y0)
	ix1, ok2 := devCoord(x1)
	iy1, ok3 := devCoord(y1)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return
	}
	DrawLine(s, ix0, iy0, ix1, iy1, c)
}

// DrawPointF truncates a float point toward zero and draws it. Points that
// cannot be addressed are dropped.
func DrawPointF(s Surface, x, y float64, c Color) {
	ix, okx := devCoord(x)
	iy, oky := devCoord(y)
	if okx && oky {
		s.DrawPixel(ix, iy, c)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
