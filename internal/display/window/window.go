// Package window shows a panel in a desktop window.
package window

import (
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/san-kum/tinyraster/internal/display"
	"github.com/san-kum/tinyraster/internal/raster"
)

// Window is a Display backed by an ebiten window. Drawing happens on a
// separate goroutine; the game loop copies the frame under a lock.
type Window struct {
	title string
	scale int

	mu     sync.Mutex
	fb     *raster.Framebuffer
	dirty  bool
	closed bool
	err    error

	img *ebiten.Image
	pix []byte
}

// New returns a w×h panel shown at scale× size.
func New(title string, w, h, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		title: title,
		scale: scale,
		fb:    raster.NewFramebuffer(w, h),
	}
}

func (w *Window) Bounds() (int, int) { return w.fb.Bounds() }

func (w *Window) DrawPixel(x, y int, c raster.Color) {
	w.mu.Lock()
	w.fb.DrawPixel(x, y, c)
	w.dirty = true
	w.mu.Unlock()
}

// Delay sleeps so intermediate frames become visible.
func (w *Window) Delay(ms int) {
	display.Sleep.Delay(ms)
}

// Run opens the window and calls draw with it on a background goroutine.
// It blocks until the window is closed and returns draw's error, if any.
// A failing draw closes the window.
func (w *Window) Run(draw func(display.Display) error) error {
	go func() {
		err := draw(w)
		w.mu.Lock()
		w.err = err
		if err != nil {
			w.closed = true
		}
		w.mu.Unlock()
	}()

	width, height := w.Bounds()
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(width*w.scale, height*w.scale)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(w)

	w.mu.Lock()
	w.closed = true
	drawErr := w.err
	w.mu.Unlock()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return drawErr
}

func (w *Window) Update() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ebiten.Termination
	}
	return nil
}

// Close ends the game loop on its next tick.
func (w *Window) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}

func (w *Window) Draw(screen *ebiten.Image) {
	width, height := w.Bounds()
	if w.img == nil {
		w.img = ebiten.NewImage(width, height)
		w.pix = make([]byte, width*height*4)
	}

	w.mu.Lock()
	if w.dirty {
		copy(w.pix, w.fb.Image().Pix)
		w.dirty = false
	}
	w.mu.Unlock()

	w.img.WritePixels(w.pix)
	screen.DrawImage(w.img, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.Bounds()
}
