package scene

import (
	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

const (
	axisLength = 200
	cubeMin    = 55
	cubeSide   = 50
	cubeBase   = 10

	cubeTurnDeg = -5

	shadowStep = 1.234
	topStep    = 0.9888
	sideStep   = 0.988

	frontColor = raster.Color(0xF59105)
	rightColor = raster.Color(0x5905F5)
)

// CubeAxis is the line the cube is turned about.
var CubeAxis = geom.Axis{From: geom.P3(0, 0, 35), To: geom.P3(200, 220, 40)}

// Cube corners. Bit 0 is +Z, bit 1 is +Y, bit 2 is +X.
const (
	cBase = iota
	cTop
	cBaseY
	cTopY
	cBaseX
	cTopX
	cBaseXY
	cTopXY
)

// Cube holds the eight corners of the scene cube after rotation.
type Cube [8]geom.Point3D

// NewCube builds the cube and turns it about CubeAxis.
func NewCube() (Cube, error) {
	rot, err := geom.NewRotator(CubeAxis, cubeTurnDeg)
	if err != nil {
		return Cube{}, err
	}
	corners := make([]geom.Point3D, len(Cube{}))
	for i := range corners {
		p := geom.P3(cubeMin, cubeMin, cubeBase)
		if i&4 != 0 {
			p.X += cubeSide
		}
		if i&2 != 0 {
			p.Y += cubeSide
		}
		if i&1 != 0 {
			p.Z += cubeSide
		}
		corners[i] = p
	}
	var c Cube
	copy(c[:], rot.ApplyAll(corners))
	return c, nil
}

// TreeTrunk is the trunk of the tree standing on the given face: it rises
// half a side from the middle of the face's bottom edge.
func (c Cube) TreeTrunk(face geom.Plane) (start, end geom.Point3D) {
	base := c[cBase]
	switch face {
	case geom.PlaneFront:
		start = geom.P3(base.X+cubeSide, base.Y+cubeSide/2, base.Z)
	default:
		start = geom.P3(base.X+cubeSide/2, base.Y+cubeSide, base.Z)
	}
	end = geom.P3(start.X, start.Y, base.Z+cubeSide/2)
	return start, end
}

// TopFace is the lit face in drawing order.
func (c Cube) TopFace() []geom.Point3D {
	return []geom.Point3D{c[cTop], c[cTopX], c[cTopXY], c[cTopY]}
}

type cubeEdge struct {
	a, b  int
	color raster.Color
	lit   bool
}

var cubeEdges = []cubeEdge{
	{cBaseY, cBase, raster.White, false},
	{cBaseXY, cBaseX, raster.White, false},
	{cBaseY, cBaseXY, raster.Blue, false},
	{cBaseX, cBase, raster.White, false},

	{cTopY, cTop, 0, true},
	{cTopY, cTopXY, raster.White, false},
	{cTopX, cTopXY, raster.White, false},
	{cTopX, cTop, 0, true},

	{cTopX, cBaseX, 0, true},
	{cTopXY, cBaseXY, raster.White, false},
	{cTop, cBase, 0, true},
	{cTopY, cBaseY, raster.Blue, false},
}

func drawCube(f *frame) error {
	raster.Clear(f.dst, raster.Black)

	o := geom.P3(0, 0, 0)
	f.line(o, geom.P3(axisLength, 0, 0), raster.Red)
	f.line(o, geom.P3(0, axisLength, 0), raster.Green)
	f.line(o, geom.P3(0, 0, axisLength), raster.PureBlue)

	cube, err := NewCube()
	if err != nil {
		return err
	}
	lit := f.p.Light.Diffuse(cube[cTop], 0.8, 0, 0)
	for _, e := range cubeEdges {
		c := e.color
		if e.lit {
			c = lit
		}
		f.line(cube[e.a], cube[e.b], c)
	}

	shadow, err := f.p.Light.Shadow(cube.TopFace())
	if err != nil {
		return err
	}
	for i := range shadow {
		f.line(shadow[i], shadow[(i+1)%len(shadow)], raster.DarkBlue)
	}
	f.fillGround(shadow, shadowStep, raster.DarkBlue)

	if err := f.err(); err != nil {
		return err
	}

	top := cube[cTop].Z
	for y := cube[cTop].Y; y <= cube[cBaseY].Y; y += topStep {
		for x := cube[cBase].X; x <= cube[cBaseX].X; x += topStep {
			p := geom.P3(x, y, top)
			f.point(p, f.p.Light.Diffuse(p, 0.8, 0, 0))
		}
	}

	front := cube[cBaseX].X
	for y := cube[cTop].Y; y <= cube[cBaseY].Y; y += sideStep {
		for z := cube[cTop].Z; z >= cube[cBase].Z; z -= sideStep {
			f.point(geom.P3(front, y, z), frontColor)
		}
	}

	right := cube[cBaseY].Y
	for z := cube[cTop].Z; z >= cube[cBase].Z; z -= sideStep {
		for x := cube[cBaseX].X; x >= cube[cBase].X; x -= sideStep {
			f.point(geom.P3(x, right, z), rightColor)
		}
	}

	start, end := cube.TreeTrunk(f.p.TreeFace)
	gen.Trunk3D(f.view, f.p.Camera, start, end, raster.Red, 1)
	gen.Tree3D(f.view, f.p.Camera, start, end, f.p.TreeFace,
		gen.Params{Lambda: CubeTreeLambda, Depth: f.p.depthOr(CubeTreeDepth)}, raster.Red)
	return nil
}
