// Package display provides the panel collaborators a scene draws into.
//
// A scene only ever calls DrawPixel and Delay. Implementations here cover
// an in-memory recorder for tests and exports, a braille terminal preview,
// and (in the window subpackage) a desktop window.
package display

import (
	"time"

	"github.com/san-kum/tinyraster/internal/raster"
)

// Delayer pauses between drawing steps.
type Delayer interface {
	Delay(ms int)
}

// Display is a pixel sink with a clock.
type Display interface {
	raster.Surface
	Delayer
}

// DelayFunc adapts a function to Delayer.
type DelayFunc func(ms int)

func (f DelayFunc) Delay(ms int) { f(ms) }

// NoDelay returns immediately.
var NoDelay Delayer = DelayFunc(func(int) {})

// Sleep blocks for ms milliseconds.
var Sleep Delayer = DelayFunc(func(ms int) {
	if ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
})

// Scaled multiplies every delay by factor; zero or less disables delays.
func Scaled(d Delayer, factor float64) Delayer {
	if factor <= 0 || d == nil {
		return NoDelay
	}
	return DelayFunc(func(ms int) {
		d.Delay(int(float64(ms) * factor))
	})
}

