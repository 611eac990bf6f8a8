package gen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
)

type countingSurface struct {
	w, h   int
	pixels map[[2]int]raster.Color
}

func newCounting(w, h int) *countingSurface {
	return &countingSurface{w: w, h: h, pixels: map[[2]int]raster.Color{}}
}

func (c *countingSurface) Bounds() (int, int) { return c.w, c.h }

func (c *countingSurface) DrawPixel(x, y int, col raster.Color) {
	if !raster.InBounds(x, y, c.w, c.h) {
		return
	}
	c.pixels[[2]int{x, y}] = col
}

func TestNormalizeLambda(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
		ok   bool
	}{
		{0.5, 0.5, true},
		{0.8, 0.8, true},
		{0.999, 0.999, true},
		{0, DefaultLambda, false},
		{1, DefaultLambda, false},
		{-0.3, DefaultLambda, false},
		{1.7, DefaultLambda, false},
		{math.NaN(), DefaultLambda, false},
	}
	for _, tt := range tests {
		got, ok := NormalizeLambda(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeLambda(%v): expected (%v, %v), got (%v, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestParamsDepthClamp(t *testing.T) {
	if d := (Params{Depth: -4}).depth(); d != 0 {
		t.Errorf("expected 0, got %d", d)
	}
	if d := (Params{Depth: 99}).depth(); d != MaxDepth {
		t.Errorf("expected %d, got %d", MaxDepth, d)
	}
}

func TestSquaresDepthZero(t *testing.T) {
	s := newCounting(64, 64)
	n := Squares(s, AxisSquare(40, 40, 20), raster.Red, Params{Lambda: 0.8, Depth: 0})
	if n != 0 || len(s.pixels) != 0 {
		t.Errorf("expected nothing drawn, got %d segments and %d pixels", n, len(s.pixels))
	}
}

func TestSquaresDepthOneDrawsOutline(t *testing.T) {
	s := newCounting(128, 128)
	q := Square{{X: 10, Y: 50}, {X: 10, Y: 0}, {X: -40, Y: 0}, {X: -40, Y: 50}}
	vp := raster.NewViewport(s)
	n := Squares(vp, q, 0xFF0000, Params{Lambda: 0.8, Depth: 1})
	if n != 4 {
		t.Fatalf("expected 4 segments, got %d", n)
	}
	// 51 pixels per side, 4 shared corners
	if len(s.pixels) != 200 {
		t.Errorf("expected 200 pixels, got %d", len(s.pixels))
	}
	for _, c := range s.pixels {
		if c != 0xFF0000 {
			t.Fatalf("expected only red pixels, got %v", c)
		}
	}
}

func TestSquaresSegmentCount(t *testing.T) {
	s := newCounting(200, 200)
	n := Squares(s, AxisSquare(150, 150, 100), raster.Blue, Params{Lambda: 0.2, Depth: 10})
	if n != 40 {
		t.Errorf("expected 40, got %d", n)
	}
}

func TestSquareInsetTruncates(t *testing.T) {
	q := Square{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	got := q.Inset(0.25)
	want := Square{{X: 2, Y: 0}, {X: 10, Y: 2}, {X: 7, Y: 10}, {X: 0, Y: 7}}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	got = q.Inset(0.33)
	want = Square{{X: 3, Y: 0}, {X: 10, Y: 3}, {X: 6, Y: 10}, {X: 0, Y: 6}}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestInvalidLambdaFallsBack(t *testing.T) {
	a, b := newCounting(200, 200), newCounting(200, 200)
	q := AxisSquare(150, 150, 100)
	Squares(a, q, raster.Red, Params{Lambda: 3, Depth: 5})
	Squares(b, q, raster.Red, Params{Lambda: DefaultLambda, Depth: 5})
	if len(a.pixels) != len(b.pixels) {
		t.Errorf("expected same output as default lambda, got %d vs %d pixels", len(a.pixels), len(b.pixels))
	}
}

func TestSegmentBound(t *testing.T) {
	for depth, want := range map[int]int{0: 0, 1: 3, 2: 12, 3: 39, 7: 3279} {
		if got := SegmentBound(depth); got != want {
			t.Errorf("depth %d: expected %d, got %d", depth, want, got)
		}
	}
}

func TestTreeSegmentCount(t *testing.T) {
	for depth := 0; depth <= 5; depth++ {
		s := newCounting(200, 200)
		rnd := rand.New(rand.NewSource(int64(depth)))
		n := Tree(s, geom.Point2D{X: 10, Y: 80}, geom.Point2D{X: 30, Y: 80}, Params{Lambda: 0.8, Depth: depth}, rnd, DefaultTreeStyle())
		if n != SegmentBound(depth) {
			t.Errorf("depth %d: expected %d segments, got %d", depth, SegmentBound(depth), n)
		}
	}
}

func TestTreeDeterministic(t *testing.T) {
	draw := func() map[[2]int]raster.Color {
		s := newCounting(200, 200)
		Tree(s, geom.Point2D{X: 10, Y: 80}, geom.Point2D{X: 25, Y: 80}, Params{Lambda: 0.8, Depth: 6},
			rand.New(rand.NewSource(42)), DefaultTreeStyle())
		return s.pixels
	}
	a, b := draw(), draw()
	if len(a) != len(b) {
		t.Fatalf("expected identical output, got %d vs %d pixels", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Fatalf("pixel %v differs: %v vs %v", k, v, b[k])
		}
	}
}

func TestTreeDepthOneGeometry(t *testing.T) {
	s := newCounting(200, 200)
	// angle index 4 (30 degrees) both ways, colour index 0
	rnd := &Sequence{Values: []int{4, 0, 4, 0}}
	n := Tree(s, geom.Point2D{X: 0, Y: 100}, geom.Point2D{X: 50, Y: 100}, Params{Lambda: 0.5, Depth: 1}, rnd, DefaultTreeStyle())
	if n != 3 {
		t.Fatalf("expected 3 segments, got %d", n)
	}
	// continuation from (50,100) to (75,100) in black
	for x := 50; x <= 75; x++ {
		if c, ok := s.pixels[[2]int{x, 100}]; !ok || (c != raster.Black && x != 50) {
			t.Fatalf("expected black continuation pixel at (%d,100), got %v (present=%v)", x, c, ok)
		}
	}
	// branch tips at 25 * (cos 30, ±sin 30) from the fork
	dx, dy := 25*math.Cos(math.Pi/6), 25*math.Sin(math.Pi/6)
	for _, tip := range [][2]int{{int(50 + dx), int(100 + dy)}, {int(50 + dx), int(100 - dy)}} {
		if c := s.pixels[tip]; c != raster.Green1 {
			t.Errorf("expected green tip at %v, got %v", tip, c)
		}
	}
}

func TestTreeRandCallOrder(t *testing.T) {
	rec := &recordingRand{}
	Tree(newCounting(10, 10), geom.Point2D{}, geom.Point2D{X: 1}, Params{Lambda: 0.8, Depth: 1}, rec, DefaultTreeStyle())
	want := []int{5, 5, 5, 5}
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d: expected Intn(%d), got Intn(%d)", i, want[i], rec.calls[i])
		}
	}
}

type recordingRand struct{ calls []int }

func (r *recordingRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	return 0
}

func TestSequenceCycles(t *testing.T) {
	s := &Sequence{Values: []int{7, -1}}
	if got := s.Intn(5); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := s.Intn(5); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := s.Intn(3); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := (&Sequence{}).Intn(3); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestBranchThickness(t *testing.T) {
	s := newCounting(50, 50)
	Branch(s, geom.Point2D{X: 5, Y: 10}, geom.Point2D{X: 15, Y: 10}, raster.Black, 2)
	if len(s.pixels) != 22 {
		t.Errorf("expected 22 pixels, got %d", len(s.pixels))
	}
	if _, ok := s.pixels[[2]int{10, 11}]; !ok {
		t.Error("expected second row at y=11")
	}
}

func TestTree3DStaysInPlane(t *testing.T) {
	cam := geom.NewCamera(geom.P3(150, 150, 100), 120)
	start, end := geom.P3(80, 105, 10), geom.P3(80, 105, 35)
	s := newCounting(127, 159)
	n := Tree3D(raster.NewViewport(s), cam, start, end, geom.PlaneRight, Params{Lambda: 0.6, Depth: 2}, raster.Red)
	if n != 12 {
		t.Errorf("expected 12 segments, got %d", n)
	}
	if len(s.pixels) == 0 {
		t.Error("expected pixels on the panel")
	}

	tr := &tree3D{plane: geom.PlaneRight, lambda: 0.6}
	c := tr.extend(start, end)
	if !geom.Near3(c, geom.P3(80, 105, 50), 1e-9) {
		t.Errorf("expected (80,105,50), got %v", c)
	}
	tr.plane = geom.PlaneFront
	c = tr.extend(geom.P3(105, 80, 10), geom.P3(105, 90, 30))
	if !geom.Near3(c, geom.P3(105, 96, 42), 1e-9) {
		t.Errorf("expected (105,96,42), got %v", c)
	}
}

func TestTree3DSkipsCameraPlane(t *testing.T) {
	// Every point with x = 200 lies on the camera plane of an eye at (200,0,0).
	cam := geom.NewCamera(geom.P3(200, 0, 0), 120)
	start, end := geom.P3(200, 10, 0), geom.P3(200, 10, 20)
	s := newCounting(127, 159)

	n := Tree3D(raster.NewViewport(s), cam, start, end, geom.PlaneFront, Params{Lambda: 0.6, Depth: 3}, raster.Red)
	Trunk3D(raster.NewViewport(s), cam, start, end, raster.Red, 2)

	if n != 0 {
		t.Errorf("expected no segments, got %d", n)
	}
	if len(s.pixels) != 0 {
		t.Errorf("expected no pixels, got %d", len(s.pixels))
	}
}

func TestTrunk3DThickness(t *testing.T) {
	cam := geom.NewCamera(geom.P3(150, 150, 100), 120)
	a, b := newCounting(127, 159), newCounting(127, 159)
	Trunk3D(raster.NewViewport(a), cam, geom.P3(80, 105, 10), geom.P3(80, 105, 35), raster.Red, 1)
	Trunk3D(raster.NewViewport(b), cam, geom.P3(80, 105, 10), geom.P3(80, 105, 35), raster.Red, 3)
	if len(b.pixels) <= len(a.pixels) {
		t.Errorf("expected thicker trunk to cover more pixels, got %d vs %d", len(b.pixels), len(a.pixels))
	}
}
