package scene

import (
	"math"

	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

const (
	sphereRadius  = 100
	sphereSamples = 360
	sphereSpokes  = 40
	sphereRise    = 4
)

type spoke struct {
	p  geom.Point2D
	c  raster.Color
	ok bool
}

// RingRadius returns the contour radius at each level. The radius is an
// integer that shrinks by a quarter of the level each step.
func RingRadius(levels int) []int {
	out := make([]int, levels)
	r := sphereRadius
	for level := range out {
		out[level] = r
		r = int(float64(r) - 0.25*float64(level))
	}
	return out
}

func drawSphere(f *frame) error {
	raster.Clear(f.dst, raster.Black)

	levels := f.p.countOr(SphereLevels)
	stride := sphereSamples / sphereSpokes
	var spokes []spoke

	for level, r := range RingRadius(levels) {
		if err := f.err(); err != nil {
			return err
		}
		z := float64(sphereRise * level)
		for i := 0; i < sphereSamples; i++ {
			s, c := math.Sincos(geom.Radians(float64(i)))
			p := geom.P3(float64(r)*c, float64(r)*s, z)
			col := f.p.Light.Diffuse(p, 0, 1, 0)
			q, ok := f.project(p)
			if ok {
				raster.DrawPointF(f.view, q.X, q.Y, col)
			}
			if i%stride == 0 {
				spokes = append(spokes, spoke{p: q, c: col, ok: ok})
			}
		}
	}

	for i := 0; i+sphereSpokes < len(spokes); i++ {
		a, b := spokes[i], spokes[i+sphereSpokes]
		if !a.ok || !b.ok {
			continue
		}
		raster.DrawLineF(f.view, a.p.X, a.p.Y, b.p.X, b.p.Y, a.c)
	}
	return nil
}
