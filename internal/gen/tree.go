package gen

import (
	"math"

	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

// TreeStyle holds the palettes a tree picks from at every branch.
type TreeStyle struct {
	Trunk  raster.Color
	Colors []raster.Color
	Angles *geom.AngleTable
}

// DefaultTreeStyle is a black continuation with green side branches turned
// by 5, 10, 15, 20 or 30 degrees.
func DefaultTreeStyle() TreeStyle {
	return TreeStyle{
		Trunk: raster.Black,
		Colors: []raster.Color{
			raster.Green1, raster.Green2, raster.Green3, raster.Green4, raster.Green5,
		},
		Angles: geom.NewAngleTable(math.Pi/36, math.Pi/18, math.Pi/12, math.Pi/9, math.Pi/6),
	}
}

// SegmentBound is the number of segments a tree of the given depth draws.
func SegmentBound(depth int) int {
	if depth <= 0 {
		return 0
	}
	n := 1
	for i := 0; i < depth; i++ {
		n *= 3
	}
	return 3 * (n - 1) / 2
}

type tree2D struct {
	s      raster.Surface
	style  TreeStyle
	rnd    Rand
	lambda float64
	drawn  int
}

// Tree grows a branching tree from the segment start→end. Each level extends
// the segment by λ, then adds two branches turned either way by random
// palette angles. It returns the number of segments drawn.
func Tree(s raster.Surface, start, end geom.Point2D, p Params, rnd Rand, style TreeStyle) int {
	lambda, _ := NormalizeLambda(p.Lambda)
	if style.Angles == nil || style.Angles.Len() == 0 {
		style.Angles = DefaultTreeStyle().Angles
	}
	if len(style.Colors) == 0 {
		style.Colors = []raster.Color{style.Trunk}
	}
	t := &tree2D{s: s, style: style, rnd: rnd, lambda: lambda}
	t.grow(start, end, p.depth())
	return t.drawn
}

func (t *tree2D) grow(start, end geom.Point2D, depth int) {
	if depth == 0 {
		return
	}
	c := end.Add(end.Sub(start).Scale(t.lambda))

	t.line(c, end, t.style.Trunk)
	t.grow(end, c, depth-1)

	left := t.style.Angles.Rotate2D(c, end, t.rnd.Intn(t.style.Angles.Len()), false)
	t.line(left, end, t.pickColor())
	t.grow(end, left, depth-1)

	right := t.style.Angles.Rotate2D(c, end, t.rnd.Intn(t.style.Angles.Len()), true)
	t.line(right, end, t.pickColor())
	t.grow(end, right, depth-1)
}

func (t *tree2D) pickColor() raster.Color {
	return t.style.Colors[t.rnd.Intn(len(t.style.Colors))]
}

func (t *tree2D) line(a, b geom.Point2D, c raster.Color) {
	raster.DrawLineF(t.s, a.X, a.Y, b.X, b.Y, c)
	t.drawn++
}

// Branch draws a segment thickness pixels tall by stacking copies along y.
func Branch(s raster.Surface, start, end geom.Point2D, c raster.Color, thickness int) {
	for i := 0; i < thickness; i++ {
		raster.DrawLineF(s, start.X, start.Y+float64(i), end.X, end.Y+float64(i), c)
	}
}
