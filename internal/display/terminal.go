package display

import (
	"fmt"
	"io"

	"github.com/san-kum/tinyraster/internal/raster"
	"github.com/san-kum/tinyraster/internal/viz"
)

// Terminal previews a panel as braille text. Pixels are buffered and the
// frame is written out by Show.
type Terminal struct {
	*Headless
	out   io.Writer
	color bool
}

// NewTerminal returns a w×h terminal panel writing to out. With color set,
// each braille cell carries the colour of its last lit pixel.
func NewTerminal(out io.Writer, w, h int, color bool) *Terminal {
	return &Terminal{Headless: NewHeadless(w, h), out: out, color: color}
}

// Braille converts a frame to a braille canvas. Pixels equal to background
// stay dark.
func Braille(fb *raster.Framebuffer, background raster.Color) *viz.Canvas {
	w, h := fb.Bounds()
	c := viz.NewCanvasFor(w, h)
	c.Background = background
	fb.Flush(c)
	return c
}

// Canvas converts the buffered frame to a braille canvas.
func (t *Terminal) Canvas(background raster.Color) *viz.Canvas {
	return Braille(t.Framebuffer, background)
}

// Show writes the frame.
func (t *Terminal) Show(background raster.Color) error {
	c := t.Canvas(background)
	text := c.String()
	if t.color {
		text = c.Render()
	}
	_, err := fmt.Fprint(t.out, text)
	return err
}
