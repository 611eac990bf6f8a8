package scene

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/tinyraster/internal/display"
)

// Batch renders one scene over consecutive seeds, each into its own
// headless panel.
type Batch struct {
	Kind      Kind
	Params    Params
	Runs      int
	SeedStart int64
	Width     int
	Height    int
}

// NewBatch returns a batch of runs panels starting at p.Seed.
func NewBatch(kind Kind, p Params, runs, w, h int) *Batch {
	return &Batch{Kind: kind, Params: p, Runs: runs, SeedStart: p.Seed, Width: w, Height: h}
}

// Run renders every panel concurrently. Results are ordered by seed.
func (b *Batch) Run(ctx context.Context) ([]*display.Headless, error) {
	if b.Runs < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRuns, b.Runs)
	}
	s, err := defaultRegistry.Lookup(b.Kind)
	if err != nil {
		return nil, err
	}

	panels := make([]*display.Headless, b.Runs)
	errs := make([]error, b.Runs)

	var wg sync.WaitGroup
	for i := 0; i < b.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			p := b.Params
			p.Seed = b.SeedStart + int64(idx)
			// A shared Rand would interleave draws across panels.
			p.Rand = nil

			panel := display.NewHeadless(b.Width, b.Height)
			panels[idx], errs[idx] = panel, s.Render(ctx, p, panel, panel)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return panels, nil
}
