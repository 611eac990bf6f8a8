package scene_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tinyraster/internal/display"
	"github.com/san-kum/tinyraster/internal/scene"
)

var _ = Describe("Batch", func() {
	It("renders one panel per seed in seed order", func() {
		p := scene.DefaultParams()
		p.Seed = 11
		b := scene.NewBatch(scene.BranchingTrees, p, 3, scene.PanelWidth, scene.PanelHeight)

		panels, err := b.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(panels).To(HaveLen(3))

		for i, panel := range panels {
			want := display.NewHeadless(scene.PanelWidth, scene.PanelHeight)
			q := p
			q.Seed = 11 + int64(i)
			Expect(scene.Render(scene.BranchingTrees, q, want, nil)).To(Succeed())
			Expect(bytes.Equal(panel.Image().Pix, want.Image().Pix)).To(BeTrue())
		}
	})

	It("rejects a negative run count", func() {
		b := scene.NewBatch(scene.BranchingTrees, scene.DefaultParams(), -1, 8, 8)
		panels, err := b.Run(context.Background())
		Expect(err).To(MatchError(scene.ErrInvalidRuns))
		Expect(panels).To(BeNil())
	})

	It("renders nothing for zero runs", func() {
		b := scene.NewBatch(scene.BranchingTrees, scene.DefaultParams(), 0, 8, 8)
		panels, err := b.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(panels).To(BeEmpty())
	})

	It("fails on an unknown kind", func() {
		b := scene.NewBatch(scene.Kind(0), scene.DefaultParams(), 2, 8, 8)
		_, err := b.Run(context.Background())
		Expect(err).To(MatchError(scene.ErrUnknownScene))
	})

	It("returns the first render error", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		b := scene.NewBatch(scene.RotatedSquares, scene.DefaultParams(), 2, scene.PanelWidth, scene.PanelHeight)
		_, err := b.Run(ctx)
		Expect(err).To(MatchError(scene.ErrCanceled))
	})
})
