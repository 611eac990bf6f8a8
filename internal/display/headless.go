package display

import (
	"github.com/san-kum/tinyraster/internal/raster"
)

// Headless is an in-memory panel. It records pixel traffic and the delays a
// scene asked for without sleeping.
type Headless struct {
	*raster.Framebuffer
	Delays []int
}

// NewHeadless returns a black w×h panel.
func NewHeadless(w, h int) *Headless {
	return &Headless{Framebuffer: raster.NewFramebuffer(w, h)}
}

func (h *Headless) Delay(ms int) { h.Delays = append(h.Delays, ms) }

// TotalDelay sums every requested delay in milliseconds.
func (h *Headless) TotalDelay() int {
	total := 0
	for _, ms := range h.Delays {
		total += ms
	}
	return total
}
