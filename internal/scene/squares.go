package scene

import (
	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/raster"
)

var squarePalette = []raster.Color{
	raster.LightBlue, raster.Green1, raster.Red2, raster.Black,
	raster.Blue, raster.Red, raster.Red4, raster.Purple,
}

const squareMaxSide = 100

func drawSquares(f *frame) error {
	raster.Clear(f.dst, raster.Black)

	w, h := f.dst.Bounds()
	spanX, spanY := max(w-7, 1), max(h-4, 1)
	lambda, _ := gen.NormalizeLambda(f.p.Lambda)
	params := gen.Params{Lambda: lambda, Depth: f.p.depthOr(SquareDepth)}

	for i := 0; i < f.p.countOr(SquareCount); i++ {
		if err := f.err(); err != nil {
			return err
		}
		x := f.rnd.Intn(spanX)
		y := f.rnd.Intn(spanY)
		side := f.rnd.Intn(squareMaxSide)
		c := squarePalette[f.rnd.Intn(len(squarePalette))]

		gen.Squares(f.dst, gen.AxisSquare(float64(x), float64(y), float64(side)), c, params)
		f.clk.Delay(SquareDelay)
	}
	return nil
}
