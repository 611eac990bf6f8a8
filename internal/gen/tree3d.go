package gen

import (
	"math"

	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

// BranchAngle3D is the fixed turn of the side branches on a cube face.
const BranchAngle3D = math.Pi / 6

// Tree3D grows a tree confined to one face plane of a cube and draws every
// segment through the camera. It returns the number of segments drawn.
func Tree3D(s raster.Surface, cam geom.Camera, start, end geom.Point3D, plane geom.Plane, p Params, c raster.Color) int {
	lambda, _ := NormalizeLambda(p.Lambda)
	t := &tree3D{s: s, cam: cam, plane: plane, lambda: lambda, color: c}
	t.grow(start, end, p.depth())
	return t.drawn
}

type tree3D struct {
	s      raster.Surface
	cam    geom.Camera
	plane  geom.Plane
	lambda float64
	color  raster.Color
	drawn  int
}

// extend continues start→end by λ inside the face plane; the held axis keeps
// the start value.
func (t *tree3D) extend(start, end geom.Point3D) geom.Point3D {
	c := geom.Lerp(end, start, -t.lambda)
	switch t.plane {
	case geom.PlaneRight:
		c.Y = start.Y
	default:
		c.X = start.X
	}
	return c
}

func (t *tree3D) grow(start, end geom.Point3D, depth int) {
	if depth == 0 {
		return
	}
	c := t.extend(start, end)

	t.line(c, end)
	t.grow(end, c, depth-1)

	left := geom.RotateInPlane(c, end, BranchAngle3D, t.plane)
	t.line(left, end)
	t.grow(end, left, depth-1)

	right := geom.RotateInPlane(c, end, -BranchAngle3D, t.plane)
	t.line(right, end)
	t.grow(end, right, depth-1)
}

// line draws a projected segment. Segments touching the camera plane are
// skipped and not counted.
func (t *tree3D) line(a, b geom.Point3D) {
	pa, errA := t.cam.ProjectChecked(a)
	pb, errB := t.cam.ProjectChecked(b)
	if errA != nil || errB != nil {
		return
	}
	raster.DrawLineF(t.s, pa.X, pa.Y, pb.X, pb.Y, t.color)
	t.drawn++
}

// Trunk3D draws a projected segment thickness pixels wide by stacking copies
// along screen x.
func Trunk3D(s raster.Surface, cam geom.Camera, start, end geom.Point3D, c raster.Color, thickness int) {
	a, errA := cam.ProjectChecked(start)
	b, errB := cam.ProjectChecked(end)
	if errA != nil || errB != nil {
		return
	}
	for i := 0; i < thickness; i++ {
		raster.DrawLineF(s, a.X+float64(i), a.Y, b.X+float64(i), b.Y, c)
	}
}
