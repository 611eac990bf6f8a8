package geom

import (
	"math"

	"github.com/san-kum/tinyraster/internal/raster"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultDiffuseScale lifts the tiny cosθ/d² term into a visible range for
// scenes a few hundred units across.
const DefaultDiffuseScale = 16000

// Light is a point source. The diffuse model assumes every shaded surface
// faces world +Z, so cosθ reduces to (Psz − Pz)/d.
type Light struct {
	Pos   Point3D
	Scale float64
}

func NewLight(pos Point3D) Light {
	return Light{Pos: pos, Scale: DefaultDiffuseScale}
}

// Intensity returns (Psz − Pz)/d³ times the light's scale. A point at the
// light position is infinitely bright.
func (l Light) Intensity(p Point3D) float64 {
	d := r3.Norm(r3.Sub(l.Pos, p))
	if d == 0 {
		return math.Inf(1)
	}
	return (l.Pos.Z - p.Z) / (d * d * d) * l.Scale
}

// Diffuse shades p with per-channel reflectivity in [0,1]. Channels saturate
// at 255 and never go negative; zero reflectivity always yields a zero channel.
func (l Light) Diffuse(p Point3D, reflR, reflG, reflB float64) raster.Color {
	in := l.Intensity(p)
	ch := func(refl float64) float64 {
		if refl <= 0 {
			return 0
		}
		return refl * in * 255
	}
	return raster.RGB(ch(reflR), ch(reflG), ch(reflB))
}

// ShadowLambda is the ray parameter at which z reaches the ground plane when
// walking from height zi toward height zs.
func ShadowLambda(zi, zs float64) float64 {
	return -zi / (zs - zi)
}

// ShadowPoint intersects the ray from the light ps through pi with z = 0.
// ps.Z must differ from pi.Z.
func ShadowPoint(pi, ps Point3D) Point3D {
	s := Lerp(pi, ps, ShadowLambda(pi.Z, ps.Z))
	s.Z = 0
	return s
}

// ShadowPointChecked is ShadowPoint with the coplanar precondition enforced.
func ShadowPointChecked(pi, ps Point3D) (Point3D, error) {
	if pi.Z == ps.Z {
		return Point3D{}, ErrLightCoplanar
	}
	return ShadowPoint(pi, ps), nil
}

// Shadow casts every point of a face onto the ground plane. It fails with
// ErrLightCoplanar if any point is level with the light.
func (l Light) Shadow(face []Point3D) ([]Point3D, error) {
	out := make([]Point3D, len(face))
	for i, p := range face {
		s, err := ShadowPointChecked(p, l.Pos)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
