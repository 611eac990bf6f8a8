package scene

import (
	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

const (
	groundWidth  = 40
	groundColor  = raster.Color(0x4A290A)
	skyBase      = raster.Color(0x1900FF)
	trunkSpanY   = 150
	trunkMaxLen  = 30
	trunkDefault = 20
)

// SkyColor is the gradient colour of panel column x.
func SkyColor(x int) raster.Color {
	return skyBase - raster.Color(2*(x-groundWidth))
}

func drawTrees(f *frame) error {
	w, h := f.dst.Bounds()
	for x := groundWidth; x < w; x++ {
		raster.FillRect(f.dst, x, 0, x+1, h, SkyColor(x))
	}
	raster.FillRect(f.dst, 0, 0, groundWidth, h, groundColor)

	lambda, ok := gen.NormalizeLambda(f.p.TreeLambda)
	if !ok {
		lambda = TreeLambda
	}
	params := gen.Params{Lambda: lambda, Depth: f.p.depthOr(TreeDepth)}
	style := gen.DefaultTreeStyle()

	for i := 0; i < f.p.countOr(TreeCount); i++ {
		if err := f.err(); err != nil {
			return err
		}
		start := geom.Point2D{
			X: float64(f.rnd.Intn(groundWidth)),
			Y: float64(f.rnd.Intn(trunkSpanY)),
		}
		n := f.rnd.Intn(trunkMaxLen)
		if n == 0 {
			n = trunkDefault
		}
		end := geom.Point2D{X: start.X + float64(n), Y: start.Y}

		gen.Branch(f.dst, start, end, raster.Black, 2)
		gen.Tree(f.dst, start, end, params, f.rnd, style)
	}
	return nil
}
