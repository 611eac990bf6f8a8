package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/tinyraster/internal/raster"
	"github.com/san-kum/tinyraster/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, canvas.Background))

	dotRadius := scale * 0.4

	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, canvas.Colors[y/4][x/2]))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// FramebufferToSVG draws each horizontal run of equal pixels as one rect.
// Pixels matching background are left to the backdrop.
func FramebufferToSVG(fb *raster.Framebuffer, scale float64, background raster.Color) string {
	if fb == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}
	w, h := fb.Bounds()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, float64(w)*scale, float64(h)*scale, w, h, background))

	for y := 0; y < h; y++ {
		for x := 0; x < w; {
			c := fb.At(x, y)
			run := 1
			for x+run < w && fb.At(x+run, y) == c {
				run++
			}
			if c != background {
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="1" fill="%s"/>
`, x, y, run, c))
			}
			x += run
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
