package geom

import "errors"

// Precondition violations reported by the checked variants.
var (
	// ErrOnCameraPlane indicates a point whose viewer-space depth is zero.
	ErrOnCameraPlane = errors.New("geom: point lies on the camera plane")

	// ErrDegenerateCamera indicates an eye position on the world Z axis.
	ErrDegenerateCamera = errors.New("geom: eye position has no azimuth (Xe = Ye = 0)")

	// ErrDegenerateAxis indicates a rotation axis whose alignment divisors vanish.
	ErrDegenerateAxis = errors.New("geom: rotation axis is degenerate")

	// ErrLightCoplanar indicates a light at the same height as the shadowed point.
	ErrLightCoplanar = errors.New("geom: light is level with the point")
)
