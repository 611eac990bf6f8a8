package raster

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a packed 24-bit 0xRRGGBB value.
type Color uint32

// Palette used by the screensaver scenes.
const (
	Black     Color = 0x000000
	White     Color = 0xFFFFFF
	Red       Color = 0xFF0000
	Green     Color = 0x00FF00
	Blue      Color = 0x0007FF
	PureBlue  Color = 0x0000FF
	LightBlue Color = 0x00FFE0
	DarkBlue  Color = 0x000033
	Magenta   Color = 0x00F81F
	Purple    Color = 0xCC33FF
	Brown     Color = 0xA52A2A
	Yellow    Color = 0xFFFE00
	Grey1     Color = 0x7A7C7B
	Blue1     Color = 0x3999FF

	Green1 Color = 0x38761D
	Green2 Color = 0x002200
	Green3 Color = 0x00FC7C
	Green4 Color = 0x32CD32
	Green5 Color = 0x228B22
	Green6 Color = 0x006400

	Red1 Color = 0xE61C1C
	Red2 Color = 0xEE3B3B
	Red3 Color = 0xEF4D4D
	Red4 Color = 0xE88080
)

// RGB packs three channel values, saturating each to [0,255].
// NaN is treated as 0.
func RGB(r, g, b float64) Color {
	return Color(uint32(saturate(r))<<16 | uint32(saturate(g))<<8 | uint32(saturate(b)))
}

func saturate(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Masked drops anything above the low 24 bits.
func (c Color) Masked() Color { return c & 0xFFFFFF }

// FromColor packs any image/color value, ignoring alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color((r>>8)<<16 | (g>>8)<<8 | b>>8)
}

func (c Color) String() string { return fmt.Sprintf("#%06X", uint32(c.Masked())) }
