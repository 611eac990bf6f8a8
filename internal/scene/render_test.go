package scene_test

import (
	"bytes"
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tinyraster/internal/display"
	"github.com/san-kum/tinyraster/internal/geom"
	"github.com/san-kum/tinyraster/internal/raster"
	"github.com/san-kum/tinyraster/internal/scene"
)

var _ = Describe("Render", func() {
	var panel *display.Headless

	BeforeEach(func() {
		panel = display.NewHeadless(scene.PanelWidth, scene.PanelHeight)
	})

	DescribeTable("draws every scene onto the panel",
		func(kind scene.Kind) {
			Expect(scene.Render(kind, scene.DefaultParams(), panel, panel)).To(Succeed())
			Expect(panel.Writes()).To(BeNumerically(">", 0))
		},
		Entry("squares", scene.RotatedSquares),
		Entry("trees", scene.BranchingTrees),
		Entry("cube", scene.Cube3D),
		Entry("sphere", scene.HalfSphere3D),
	)

	It("is deterministic for a fixed seed", func() {
		other := display.NewHeadless(scene.PanelWidth, scene.PanelHeight)
		p := scene.DefaultParams()
		p.Seed = 7

		Expect(scene.Render(scene.BranchingTrees, p, panel, nil)).To(Succeed())
		Expect(scene.Render(scene.BranchingTrees, p, other, nil)).To(Succeed())
		Expect(bytes.Equal(panel.Image().Pix, other.Image().Pix)).To(BeTrue())
	})

	It("pauses between squares", func() {
		Expect(scene.Render(scene.RotatedSquares, scene.DefaultParams(), panel, panel)).To(Succeed())
		Expect(panel.Delays).To(HaveLen(scene.SquareCount))
		Expect(panel.TotalDelay()).To(Equal(scene.SquareCount * scene.SquareDelay))
	})

	It("rejects an unknown kind", func() {
		err := scene.Render(scene.Kind(42), scene.DefaultParams(), panel, nil)
		Expect(err).To(MatchError(scene.ErrUnknownScene))
		Expect(panel.Writes()).To(BeZero())
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := scene.RenderContext(ctx, scene.RotatedSquares, scene.DefaultParams(), panel, panel)
		Expect(err).To(MatchError(scene.ErrCanceled))

		var re *scene.RenderError
		Expect(errors.As(err, &re)).To(BeTrue())
		Expect(re.Kind).To(Equal(scene.RotatedSquares))
		Expect(panel.Delays).To(BeEmpty())
	})

	It("reports a camera on the Z axis", func() {
		p := scene.DefaultParams()
		p.Camera = geom.NewCamera(geom.P3(0, 0, 100), scene.DefaultFocal)

		err := scene.Render(scene.Cube3D, p, panel, nil)
		Expect(err).To(MatchError(geom.ErrDegenerateCamera))
	})

	DescribeTable("finishes when scene points sit on the camera plane",
		func(kind scene.Kind, eye geom.Point3D) {
			p := scene.DefaultParams()
			p.Camera = geom.NewCamera(eye, scene.DefaultFocal)

			done := make(chan error, 1)
			go func() { done <- scene.Render(kind, p, panel, nil) }()

			var err error
			Eventually(done).WithTimeout(5 * time.Second).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())
		},
		Entry("cube axis tip", scene.Cube3D, geom.P3(200, 0, 0)),
		Entry("sphere rim", scene.HalfSphere3D, geom.P3(100, 0, 0)),
	)

	Context("cube", func() {
		It("grows the tree on the configured face", func() {
			right := display.NewHeadless(scene.PanelWidth, scene.PanelHeight)
			p := scene.DefaultParams()
			Expect(scene.Render(scene.Cube3D, p, right, nil)).To(Succeed())

			p.TreeFace = geom.PlaneFront
			Expect(scene.Render(scene.Cube3D, p, panel, nil)).To(Succeed())
			Expect(bytes.Equal(panel.Image().Pix, right.Image().Pix)).To(BeFalse())
		})

		It("fills the shadow, faces and tree", func() {
			Expect(scene.Render(scene.Cube3D, scene.DefaultParams(), panel, nil)).To(Succeed())
			Expect(panel.Count(raster.DarkBlue)).To(BeNumerically(">", 20))
			Expect(panel.Count(0xF59105)).To(BeNumerically(">", 20))
			Expect(panel.Count(0x5905F5)).To(BeNumerically(">", 20))
			Expect(panel.Count(raster.Red)).To(BeNumerically(">", 0))
		})
	})

	Context("trees", func() {
		It("paints ground and sky", func() {
			Expect(scene.Render(scene.BranchingTrees, scene.DefaultParams(), panel, nil)).To(Succeed())
			Expect(panel.Count(scene.SkyColor(scene.PanelWidth - 1))).To(BeNumerically(">", 0))
			Expect(panel.Count(0x4A290A)).To(BeNumerically(">", 0))
		})
	})
})

var _ = Describe("Registry", func() {
	It("lists scenes in menu order", func() {
		Expect(scene.Default().List()).To(Equal([]string{"squares", "trees", "cube", "sphere"}))
	})

	It("resolves names case-insensitively", func() {
		s, err := scene.Default().Get(" Cube ")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Kind).To(Equal(scene.Cube3D))
		Expect(s.Summary).NotTo(BeEmpty())
	})

	It("wraps unknown names", func() {
		_, err := scene.Default().Get("teapot")
		Expect(err).To(MatchError(scene.ErrUnknownScene))
		Expect(err.Error()).To(ContainSubstring("teapot"))
	})
})
