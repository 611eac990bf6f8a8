package scene

import (
	"math/rand"

	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/geom"
)

// Panel geometry and scene constants.
const (
	PanelWidth  = 127
	PanelHeight = 159

	DefaultFocal = 120

	SquareCount = 20
	SquareDepth = 10
	SquareDelay = 5

	TreeCount  = 15
	TreeDepth  = 7
	TreeLambda = 0.8

	CubeTreeDepth  = 2
	CubeTreeLambda = 0.6

	SphereLevels = 20
)

var (
	DefaultEye   = geom.P3(150, 150, 100)
	DefaultLight = geom.P3(-20, -20, 220)
)

// Params tunes a render. Zero counts and depths select the scene default.
type Params struct {
	// Lambda is the square inset factor. Invalid values fall back to
	// gen.DefaultLambda.
	Lambda float64

	// TreeLambda is the branch extension factor for the 2D forest.
	TreeLambda float64

	Depth int
	Count int
	Seed  int64

	Camera geom.Camera
	Light  geom.Light

	// TreeFace is the cube face the 3D tree grows on.
	TreeFace geom.Plane

	// Rand overrides the generator seeded from Seed.
	Rand gen.Rand
}

func DefaultParams() Params {
	return Params{
		Lambda:     gen.DefaultLambda,
		TreeLambda: TreeLambda,
		Seed:       1,
		Camera:     geom.NewCamera(DefaultEye, DefaultFocal),
		Light:      geom.NewLight(DefaultLight),
		TreeFace:   geom.PlaneRight,
	}
}

func (p Params) rand() gen.Rand {
	if p.Rand != nil {
		return p.Rand
	}
	return rand.New(rand.NewSource(p.Seed))
}

func (p Params) depthOr(def int) int {
	if p.Depth > 0 {
		return p.Depth
	}
	return def
}

func (p Params) countOr(def int) int {
	if p.Count > 0 {
		return p.Count
	}
	return def
}
