package scene

import (
	"context"
	"fmt"

	"github.com/san-kum/tinyraster/internal/display"
	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

// frame is the state of one render.
type frame struct {
	ctx  context.Context
	dst  raster.Surface
	view *raster.Viewport
	clk  display.Delayer
	p    Params
	rnd  gen.Rand
}

func (f *frame) err() error {
	select {
	case <-f.ctx.Done():
		return fmt.Errorf("%w: %v", ErrCanceled, f.ctx.Err())
	default:
		return nil
	}
}

// project maps p to the perspective plane. Points on the camera plane have
// no image and are reported as not ok.
func (f *frame) project(p geom.Point3D) (geom.Point2D, bool) {
	q, err := f.p.Camera.ProjectChecked(p)
	return q, err == nil
}

func (f *frame) point(p geom.Point3D, c raster.Color) {
	if q, ok := f.project(p); ok {
		raster.DrawPointF(f.view, q.X, q.Y, c)
	}
}

func (f *frame) line(a, b geom.Point3D, c raster.Color) {
	pa, okA := f.project(a)
	pb, okB := f.project(b)
	if okA && okB {
		raster.DrawLineF(f.view, pa.X, pa.Y, pb.X, pb.Y, c)
	}
}

// fillGround point-samples the ground-plane polygon poly on a step grid and
// draws the samples that fall inside it.
func (f *frame) fillGround(poly []geom.Point3D, step float64, c raster.Color) int {
	if len(poly) < 3 || step <= 0 {
		return 0
	}
	flat := make([]geom.Point2D, len(poly))
	minX, maxX := poly[0].X, poly[0].X
	minY, maxY := poly[0].Y, poly[0].Y
	for i, p := range poly {
		flat[i] = geom.Point2D{X: p.X, Y: p.Y}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	n := 0
	for x := minX; x <= maxX; x += step {
		for y := minY; y <= maxY; y += step {
			if !geom.InPolygon(geom.Point2D{X: x, Y: y}, flat) {
				continue
			}
			f.point(geom.P3(x, y, 0), c)
			n++
		}
	}
	return n
}
