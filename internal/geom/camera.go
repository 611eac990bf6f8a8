package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const planeEpsilon = 1e-9

// Camera is a viewer placed at Eye looking at the world origin, with a
// perspective screen Focal units in front of it.
type Camera struct {
	Eye   Point3D
	Focal float64

	// LegacyRho computes the eye distance as √(Xe²+Ye²+Xe²), as older
	// panel builds did. Off by default.
	LegacyRho bool
}

func NewCamera(eye Point3D, focal float64) Camera {
	return Camera{Eye: eye, Focal: focal}
}

// Validate reports a camera whose azimuth is undefined.
func (c Camera) Validate() error {
	if c.Eye.X == 0 && c.Eye.Y == 0 {
		return ErrDegenerateCamera
	}
	return nil
}

// Rho is the eye distance used as the viewer-space depth offset.
func (c Camera) Rho() float64 {
	e := c.Eye
	if c.LegacyRho {
		return math.Sqrt(e.X*e.X + e.Y*e.Y + e.X*e.X)
	}
	return r3.Norm(e)
}

type viewFrame struct {
	sinT, cosT float64
	sinP, cosP float64
	rho        float64
}

func (c Camera) frame() viewFrame {
	e := c.Eye
	rxy := math.Hypot(e.X, e.Y)
	rho := c.Rho()
	return viewFrame{
		sinT: e.Y / rxy,
		cosT: e.X / rxy,
		sinP: rxy / rho,
		cosP: e.Z / rho,
		rho:  rho,
	}
}

// WorldToViewer rotates p into the camera frame. The eye sits at z = ρ and
// depth grows away from it along the viewing axis.
func (c Camera) WorldToViewer(p Point3D) Point3D {
	return c.frame().apply(p)
}

func (f viewFrame) apply(p Point3D) Point3D {
	return Point3D{
		X: -f.sinT*p.X + f.cosT*p.Y,
		Y: -f.cosT*f.cosP*p.X - f.cosP*f.sinT*p.Y + f.sinP*p.Z,
		Z: -f.sinP*f.cosT*p.X - f.sinP*f.sinT*p.Y - f.cosP*p.Z + f.rho,
	}
}

// ViewerToPerspective divides by depth. v.Z must be non-zero.
func (c Camera) ViewerToPerspective(v Point3D) Point2D {
	return Point2D{
		X: v.X * (c.Focal / v.Z),
		Y: v.Y * (c.Focal / v.Z),
	}
}

// Project maps a world point to the perspective plane.
func (c Camera) Project(p Point3D) Point2D {
	return c.ViewerToPerspective(c.WorldToViewer(p))
}

// ProjectChecked is Project with the camera-plane precondition enforced.
func (c Camera) ProjectChecked(p Point3D) (Point2D, error) {
	if err := c.Validate(); err != nil {
		return Point2D{}, err
	}
	v := c.WorldToViewer(p)
	if math.Abs(v.Z) < planeEpsilon*math.Max(1, c.Rho()) {
		return Point2D{}, ErrOnCameraPlane
	}
	return c.ViewerToPerspective(v), nil
}
