package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3D is a world- or viewer-space coordinate.
type Point3D = r3.Vec

// Point2D is a plane coordinate, either perspective output or a 2D scene point.
type Point2D struct {
	X, Y float64
}

func P3(x, y, z float64) Point3D { return Point3D{X: x, Y: y, Z: z} }

func (p Point2D) Add(o Point2D) Point2D   { return Point2D{p.X + o.X, p.Y + o.Y} }
func (p Point2D) Sub(o Point2D) Point2D   { return Point2D{p.X - o.X, p.Y - o.Y} }
func (p Point2D) Scale(s float64) Point2D { return Point2D{p.X * s, p.Y * s} }
func (p Point2D) Trunc() Point2D          { return Point2D{math.Trunc(p.X), math.Trunc(p.Y)} }

func (p Point2D) Near(o Point2D, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol
}

// Lerp returns a + t(b - a).
func Lerp(a, b Point3D, t float64) Point3D {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// Lerp2 is the planar form of Lerp.
func Lerp2(a, b Point2D, t float64) Point2D {
	return a.Add(b.Sub(a).Scale(t))
}

// Near3 reports whether two points agree within tol on every axis.
func Near3(a, b Point3D, tol float64) bool {
	d := r3.Sub(a, b)
	return math.Abs(d.X) <= tol && math.Abs(d.Y) <= tol && math.Abs(d.Z) <= tol
}

// InPolygon reports whether p is inside poly using the even-odd rule.
func InPolygon(p Point2D, poly []Point2D) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
