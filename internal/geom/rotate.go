package geom

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is the infinite line through From and To.
type Axis struct {
	From, To Point3D
}

// Rotator rotates points about a fixed axis by a fixed angle. The alignment
// coefficients are derived once and reused for every point.
type Rotator struct {
	origin Point3D

	// step 2: about Z, bringing the axis into the X-Z plane
	cosZ, sinZ float64
	// step 3: about Y, aligning the axis with +Z
	cosY, sinY float64
	// step 4: the requested rotation about the aligned axis
	cos, sin float64
}

// NewRotator validates the axis and prepares the seven-step transform.
//
// A positive angle follows the right-hand rule about From→To, so it appears
// counter-clockwise when looking from To back toward From; pass a negative
// angle for a clockwise turn.
func NewRotator(axis Axis, angleDeg float64) (*Rotator, error) {
	d := r3.Sub(axis.To, axis.From)
	if math.Hypot(d.X, d.Y) == 0 {
		return nil, ErrDegenerateAxis
	}
	return newRotator(axis, angleDeg), nil
}

func newRotator(axis Axis, angleDeg float64) *Rotator {
	r := &Rotator{origin: axis.From}

	// 1: translate so From is the origin
	t := r3.Sub(axis.To, axis.From)

	// 2: rotate about Z
	d1 := math.Sqrt(t.X*t.X + t.Y*t.Y)
	r.cosZ = t.X / d1
	r.sinZ = t.Y / d1
	a := Point3D{
		X: t.X*r.cosZ + t.Y*r.sinZ,
		Y: t.Y*r.cosZ - t.X*r.sinZ,
		Z: t.Z,
	}

	// 3: rotate about Y
	d2 := math.Sqrt(a.X*a.X + a.Z*a.Z)
	r.cosY = a.Z / d2
	r.sinY = a.X / d2

	rad := Radians(angleDeg)
	r.cos, r.sin = math.Cos(rad), math.Sin(rad)
	return r
}

// Apply rotates p.
func (r *Rotator) Apply(p Point3D) Point3D {
	t := r3.Sub(p, r.origin)

	z := Point3D{
		X: t.X*r.cosZ + t.Y*r.sinZ,
		Y: t.Y*r.cosZ - t.X*r.sinZ,
		Z: t.Z,
	}
	y := Point3D{
		X: z.X*r.cosY - z.Z*r.sinY,
		Y: z.Y,
		Z: z.Z*r.cosY + z.X*r.sinY,
	}
	m := Point3D{
		X: y.X*r.cos - y.Y*r.sin,
		Y: y.Y*r.cos + y.X*r.sin,
		Z: y.Z,
	}
	yr := Point3D{
		X: m.X*r.cosY + m.Z*r.sinY,
		Y: m.Y,
		Z: m.Z*r.cosY - m.X*r.sinY,
	}
	zr := Point3D{
		X: yr.X*r.cosZ - yr.Y*r.sinZ,
		Y: yr.Y*r.cosZ + yr.X*r.sinZ,
		Z: yr.Z,
	}
	return r3.Add(zr, r.origin)
}

// ApplyAll rotates each point, returning a new slice.
func (r *Rotator) ApplyAll(pts []Point3D) []Point3D {
	out := make([]Point3D, len(pts))
	for i, p := range pts {
		out[i] = r.Apply(p)
	}
	return out
}

// RotateAboutAxis rotates p by angleDeg about the line through axis.From and
// axis.To. The axis must not be parallel to Z.
func RotateAboutAxis(axis Axis, angleDeg float64, p Point3D) Point3D {
	return newRotator(axis, angleDeg).Apply(p)
}

// Plane selects the cube face a planar 3D rotation stays in.
type Plane int

const (
	// PlaneFront is the Y-Z face; X is held fixed.
	PlaneFront Plane = iota
	// PlaneRight is the X-Z face; Y is held fixed.
	PlaneRight
)

func (p Plane) String() string {
	switch p {
	case PlaneFront:
		return "front"
	case PlaneRight:
		return "right"
	}
	return "unknown"
}

// ParsePlane accepts "front" or "right", case-insensitively.
func ParsePlane(s string) (Plane, bool) {
	switch strings.ToLower(s) {
	case "front":
		return PlaneFront, true
	case "right":
		return PlaneRight, true
	}
	return PlaneFront, false
}

// RotateInPlane rotates p about o by rad within the given face plane. The
// held coordinate is taken from o.
func RotateInPlane(p, o Point3D, rad float64, plane Plane) Point3D {
	s, c := math.Sincos(rad)
	switch plane {
	case PlaneRight:
		tx, tz := p.X-o.X, p.Z-o.Z
		return Point3D{
			X: tx*c - tz*s + o.X,
			Y: o.Y,
			Z: tx*s + tz*c + o.Z,
		}
	default:
		ty, tz := p.Y-o.Y, p.Z-o.Z
		return Point3D{
			X: o.X,
			Y: ty*c - tz*s + o.Y,
			Z: ty*s + tz*c + o.Z,
		}
	}
}

// Rotate2D rotates p about o by rad, counter-clockwise in a y-up frame.
func Rotate2D(p, o Point2D, rad float64) Point2D {
	s, c := math.Sincos(rad)
	return rotate2D(p, o, s, c)
}

func rotate2D(p, o Point2D, s, c float64) Point2D {
	t := p.Sub(o)
	return Point2D{
		X: t.X*c - t.Y*s + o.X,
		Y: t.X*s + t.Y*c + o.Y,
	}
}
