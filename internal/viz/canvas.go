package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/tinyraster/internal/raster"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille grid usable as a raster surface. Each cell holds 2x4
// pixels and remembers the colour of the last pixel lit in it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]raster.Color
	Background    raster.Color
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]raster.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]raster.Color, w)
	}
	c.Clear()
	return c
}

// NewCanvasFor returns the smallest canvas covering a w×h pixel surface.
func NewCanvasFor(w, h int) *Canvas {
	return NewCanvas((w+1)/2, (h+3)/4)
}

// Bounds is the size in pixels.
func (c *Canvas) Bounds() (int, int) { return c.Width * 2, c.Height * 4 }

// DrawPixel lights the dot at (x, y), or clears it when col is the
// background colour.
func (c *Canvas) DrawPixel(x, y int, col raster.Color) {
	if col.Masked() == c.Background.Masked() {
		c.Unset(x, y)
		return
	}
	if c.Set(x, y) {
		c.Colors[y/4][x/2] = col
	}
}

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set lights a dot and reports whether it was on the canvas.
func (c *Canvas) Set(x, y int) bool {
	row, col, ok := c.cell(x, y)
	if !ok {
		return false
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	return true
}

// Unset clears a dot
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	row, col, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = c.Background
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with each run of same-coloured cells styled by lipgloss.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.cellColor(i, j) == c.cellColor(i, start) {
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.cellColor(i, start).String()))
			b.WriteString(style.Render(string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Canvas) cellColor(row, col int) raster.Color {
	if c.Grid[row][col] == blank {
		return c.Background
	}
	return c.Colors[row][col]
}
