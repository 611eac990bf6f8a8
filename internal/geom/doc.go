// Package geom holds the shared 3D math behind every scene.
//
// The package covers four concerns:
//
//   - [Camera]: spherical viewing transform and perspective divide
//   - [Rotator]: rotation about an arbitrary axis through two points
//   - [Light]: point-light diffuse reflection and ground-plane shadows
//   - [AngleTable]: cached sin/cos pairs for fixed branch angles
//
// Points are plain values. No function mutates its arguments; every transform
// returns a new point.
//
// # Preconditions
//
// Degenerate inputs (a point on the camera plane, an axis parallel to Z, a light
// level with the shaded point) are caller preconditions. The unchecked functions
// return IEEE Inf/NaN results in those cases; the *Checked variants and
// [NewRotator] report them as errors instead.
package geom
