package gen

import (
	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

// Square is four corners in drawing order.
type Square [4]geom.Point2D

// Inset moves every corner λ of the way toward the next corner. Corners are
// truncated to whole pixels, as the panel only addresses integers.
func (q Square) Inset(lambda float64) Square {
	var out Square
	for i := range q {
		out[i] = geom.Lerp2(q[i], q[(i+1)%4], lambda).Trunc()
	}
	return out
}

// Draw outlines the square.
func (q Square) Draw(s raster.Surface, c raster.Color) {
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		raster.DrawLineF(s, a.X, a.Y, b.X, b.Y, c)
	}
}

// Squares draws q and then p.Depth-1 successively inset copies of it.
// It returns the number of segments drawn.
func Squares(s raster.Surface, q Square, c raster.Color, p Params) int {
	lambda, _ := NormalizeLambda(p.Lambda)
	n := 0
	for depth := p.depth(); depth > 0; depth-- {
		q.Draw(s, c)
		n += 4
		q = q.Inset(lambda)
	}
	return n
}

// AxisSquare builds the square with corner (x, y) and side len extending
// toward -x and -y, in the order the screensaver draws it.
func AxisSquare(x, y, side float64) Square {
	return Square{
		{X: x, Y: y},
		{X: x, Y: y - side},
		{X: x - side, Y: y - side},
		{X: x - side, Y: y},
	}
}
