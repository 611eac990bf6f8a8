package geom

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"
)

func sceneCamera() Camera {
	return NewCamera(P3(150, 150, 100), 120)
}

func TestCameraRho(t *testing.T) {
	g := NewWithT(t)
	cam := sceneCamera()
	g.Expect(cam.Rho()).To(BeNumerically("~", math.Sqrt(55000), 1e-9))

	cam.LegacyRho = true
	g.Expect(cam.Rho()).To(BeNumerically("~", math.Sqrt(3*150*150), 1e-9))
}

func TestWorldToViewerOriginAndEye(t *testing.T) {
	g := NewWithT(t)
	cam := sceneCamera()

	o := cam.WorldToViewer(Point3D{})
	g.Expect(Near3(o, P3(0, 0, cam.Rho()), 1e-9)).To(BeTrue(), "origin maps to %v", o)

	e := cam.WorldToViewer(cam.Eye)
	g.Expect(Near3(e, Point3D{}, 1e-9)).To(BeTrue(), "eye maps to %v", e)

	p := cam.Project(Point3D{})
	g.Expect(p.Near(Point2D{}, 1e-12)).To(BeTrue())
}

func TestWorldToViewerPreservesDistance(t *testing.T) {
	cam := sceneCamera()
	offset := P3(0, 0, cam.Rho())
	for _, p := range []Point3D{P3(1, 2, 3), P3(-50, 80, 10), P3(200, 0, 0), P3(0, 0, 200)} {
		v := r3.Sub(cam.WorldToViewer(p), offset)
		if math.Abs(r3.Norm(v)-r3.Norm(p)) > 1e-9 {
			t.Errorf("viewer transform changed length of %v: %f vs %f", p, r3.Norm(v), r3.Norm(p))
		}
	}
}

func TestViewerToPerspective(t *testing.T) {
	cam := sceneCamera()
	got := cam.ViewerToPerspective(P3(10, -20, 240))
	want := Point2D{X: 5, Y: -10}
	if !got.Near(want, 1e-12) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProjectAxesOrientation(t *testing.T) {
	cam := sceneCamera()
	up := cam.Project(P3(0, 0, 100))
	if up.Y <= 0 || math.Abs(up.X) > 1e-9 {
		t.Errorf("world +Z should project straight up, got %v", up)
	}

	x := cam.Project(P3(100, 0, 0))
	y := cam.Project(P3(0, 100, 0))
	if x.X >= 0 || y.X <= 0 {
		t.Errorf("expected +X left of centre and +Y right of centre, got %v and %v", x, y)
	}
}

func TestProjectCheckedRejectsCameraPlane(t *testing.T) {
	cam := sceneCamera()

	_, err := cam.ProjectChecked(cam.Eye)
	if !errors.Is(err, ErrOnCameraPlane) {
		t.Fatalf("expected ErrOnCameraPlane for the eye, got %v", err)
	}

	// any point on the plane through the eye perpendicular to the view axis
	side := r3.Add(cam.Eye, P3(-150, 150, 0))
	if _, err := cam.ProjectChecked(side); !errors.Is(err, ErrOnCameraPlane) {
		t.Errorf("expected ErrOnCameraPlane for %v, got %v", side, err)
	}

	p, err := cam.ProjectChecked(P3(10, 20, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Near(cam.Project(P3(10, 20, 30)), 1e-12) {
		t.Error("checked and unchecked projections disagree")
	}

	bad := NewCamera(P3(0, 0, 100), 120)
	if _, err := bad.ProjectChecked(P3(1, 1, 1)); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("expected ErrDegenerateCamera, got %v", err)
	}
}

func TestInPolygon(t *testing.T) {
	quad := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	tests := []struct {
		p    Point2D
		want bool
	}{
		{Point2D{X: 5, Y: 5}, true},
		{Point2D{X: 0.5, Y: 9.5}, true},
		{Point2D{X: -1, Y: 5}, false},
		{Point2D{X: 5, Y: 11}, false},
		{Point2D{X: 15, Y: 15}, false},
	}
	for _, tt := range tests {
		if got := InPolygon(tt.p, quad); got != tt.want {
			t.Errorf("InPolygon(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	skew := []Point2D{{X: 0, Y: 0}, {X: 8, Y: 2}, {X: 10, Y: 10}, {X: -2, Y: 6}}
	if !InPolygon(Point2D{X: 4, Y: 4}, skew) || InPolygon(Point2D{X: 9, Y: 0}, skew) {
		t.Error("skewed quad containment wrong")
	}
}
